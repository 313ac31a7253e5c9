package services

import (
	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
)

// Interfaces del almacén consumidas por los servicios. Las
// implementaciones reales viven en internal/database; los tests
// inyectan stubs.

// CustomerStore define las operaciones de persistencia de clientes
type CustomerStore interface {
	Create(req *models.CreateCustomerRequest) (*models.Customer, error)
	GetByID(id uuid.UUID) (*models.Customer, error)
	Search(term string) ([]models.Customer, error)
	Count() (int, error)
}

// VehicleStore define las operaciones de persistencia de vehículos
type VehicleStore interface {
	Create(req *models.CreateVehicleRequest) (*models.Vehicle, error)
	GetByCustomerID(customerID string) ([]models.Vehicle, error)
	Search(term string) ([]models.Vehicle, error)
}

// InspectionStore define las operaciones de persistencia de inspecciones
type InspectionStore interface {
	Create(inspection *models.Inspection) error
}

// InvoiceStore define las operaciones de persistencia de facturas
type InvoiceStore interface {
	Create(invoice *models.Invoice) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	MarkPaid(id uuid.UUID) (int64, error)
}
