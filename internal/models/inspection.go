package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckStatus representa el estado de un punto del checklist
type CheckStatus string

const (
	CheckStatusOK        CheckStatus = "ok"
	CheckStatusAttention CheckStatus = "attention"
	CheckStatusFail      CheckStatus = "fail"
)

// InspectionStatusComplete es el estado por defecto de una inspección
const InspectionStatusComplete = "inspection_complete"

// CheckMap representa el checklist: sección -> punto -> estado.
// Valores fuera del conjunto ok/attention/fail se toleran y el
// derivador de facturas simplemente no los cuenta.
type CheckMap map[string]map[string]string

// Inspection representa una inspección realizada a un vehículo.
// CustomerID y VehicleID son referencias débiles sin integridad
// referencial. Una inspección es inmutable después de crearse.
type Inspection struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	VehicleID  string    `json:"vehicle_id" db:"vehicle_id"`
	Checks     CheckMap  `json:"checks" db:"checks"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	Photos     []string  `json:"photos" db:"photos"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateInspectionRequest representa el request para crear una inspección
type CreateInspectionRequest struct {
	CustomerID string   `json:"customer_id" binding:"required"`
	VehicleID  string   `json:"vehicle_id" binding:"required"`
	Checks     CheckMap `json:"checks" binding:"required"`
	Notes      *string  `json:"notes,omitempty"`
	Photos     []string `json:"photos,omitempty"`
}

// InspectionResponse representa la respuesta al crear una inspección
type InspectionResponse struct {
	InspectionID string   `json:"inspection_id"`
	InvoiceID    string   `json:"invoice_id"`
	Invoice      *Invoice `json:"invoice"`
}
