package database

import (
	"encoding/json"
	"fmt"

	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// InspectionRepository maneja las operaciones de base de datos para Inspection
type InspectionRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewInspectionRepository crea una nueva instancia del repositorio
func NewInspectionRepository(db *DB, logger *logrus.Logger) *InspectionRepository {
	return &InspectionRepository{
		db:     db,
		logger: logger,
	}
}

// Create persiste una inspección. El checklist y las fotos se
// almacenan como JSONB. No verifica que el cliente ni el vehículo
// referenciados existan.
func (r *InspectionRepository) Create(inspection *models.Inspection) error {
	checksJSON, err := json.Marshal(inspection.Checks)
	if err != nil {
		return fmt.Errorf("error marshaling checks: %w", err)
	}

	photosJSON, err := json.Marshal(inspection.Photos)
	if err != nil {
		return fmt.Errorf("error marshaling photos: %w", err)
	}

	query := `
		INSERT INTO inspections (id, customer_id, vehicle_id, checks, notes, photos, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecWithTimeout(query,
		inspection.ID, inspection.CustomerID, inspection.VehicleID,
		checksJSON, inspection.Notes, photosJSON, inspection.Status,
		inspection.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("error creating inspection: %w", err)
	}

	return nil
}
