package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle representa un vehículo registrado en el taller.
// CustomerID es una referencia débil: se almacena como string y el
// cliente referenciado puede no existir.
type Vehicle struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	VIN        string    `json:"vin" db:"vin"`
	Plate      string    `json:"plate" db:"plate"`
	Make       string    `json:"make" db:"make"`
	Model      string    `json:"model" db:"model"`
	Year       int       `json:"year" db:"year"`
	Color      *string   `json:"color,omitempty" db:"color"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateVehicleRequest representa el request para crear un vehículo
type CreateVehicleRequest struct {
	CustomerID string  `json:"customer_id" binding:"required"`
	VIN        string  `json:"vin" binding:"required"`
	Plate      string  `json:"plate" binding:"required"`
	Make       string  `json:"make" binding:"required"`
	Model      string  `json:"model" binding:"required"`
	Year       int     `json:"year" binding:"required,gte=1900,lte=2100"`
	Color      *string `json:"color,omitempty"`
}
