package models

import (
	"time"

	"github.com/google/uuid"
)

// LineItem representa una línea facturable de una factura
type LineItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Invoice representa la factura derivada de una inspección.
// InspectionID es una referencia débil 1:1 con la inspección que la
// originó. Paid solo cambia de false a true, nunca al revés.
type Invoice struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	InspectionID string     `json:"inspection_id" db:"inspection_id"`
	LineItems    []LineItem `json:"line_items" db:"line_items"`
	Subtotal     float64    `json:"subtotal" db:"subtotal"`
	Taxes        float64    `json:"taxes" db:"taxes"`
	Total        float64    `json:"total" db:"total"`
	Paid         bool       `json:"paid" db:"paid"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// PayInvoiceRequest representa el request para pagar una factura
type PayInvoiceRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
}
