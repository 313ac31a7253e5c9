package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// VehicleRepository maneja las operaciones de base de datos para Vehicle
type VehicleRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewVehicleRepository crea una nueva instancia del repositorio
func NewVehicleRepository(db *DB, logger *logrus.Logger) *VehicleRepository {
	return &VehicleRepository{
		db:     db,
		logger: logger,
	}
}

// Create crea un nuevo vehículo. No verifica que el cliente
// referenciado exista: customer_id es una referencia débil.
func (r *VehicleRepository) Create(req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	if req.Year < 1900 || req.Year > 2100 {
		return nil, fmt.Errorf("invalid year: %d (must be 1900-2100)", req.Year)
	}

	vehicle := &models.Vehicle{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		VIN:        req.VIN,
		Plate:      req.Plate,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Color:      req.Color,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	query := `
		INSERT INTO vehicles (id, customer_id, vin, plate, make, model, year, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecWithTimeout(query,
		vehicle.ID, vehicle.CustomerID, vehicle.VIN, vehicle.Plate,
		vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Color,
		vehicle.CreatedAt, vehicle.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating vehicle: %w", err)
	}

	return vehicle, nil
}

// GetByCustomerID obtiene todos los vehículos de un cliente
func (r *VehicleRepository) GetByCustomerID(customerID string) ([]models.Vehicle, error) {
	query := `
		SELECT id, customer_id, vin, plate, make, model, year, color, created_at, updated_at
		FROM vehicles
		WHERE customer_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryWithTimeout(query, customerID)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// Search busca vehículos cuyo VIN, placa, marca o modelo contengan el
// término, sin distinguir mayúsculas
func (r *VehicleRepository) Search(term string) ([]models.Vehicle, error) {
	query := `
		SELECT id, customer_id, vin, plate, make, model, year, color, created_at, updated_at
		FROM vehicles
		WHERE vin ILIKE $1 OR plate ILIKE $1 OR make ILIKE $1 OR model ILIKE $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryWithTimeout(query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("error searching vehicles: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// scanVehicles escanea las filas de un result set de vehículos
func scanVehicles(rows *sql.Rows) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	for rows.Next() {
		var vehicle models.Vehicle
		err := rows.Scan(
			&vehicle.ID, &vehicle.CustomerID, &vehicle.VIN, &vehicle.Plate,
			&vehicle.Make, &vehicle.Model, &vehicle.Year, &vehicle.Color,
			&vehicle.CreatedAt, &vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}
