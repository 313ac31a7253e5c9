package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// CustomerRepository maneja las operaciones de base de datos para Customer
type CustomerRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewCustomerRepository crea una nueva instancia del repositorio
func NewCustomerRepository(db *DB, logger *logrus.Logger) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		logger: logger,
	}
}

// Create crea un nuevo cliente
func (r *CustomerRepository) Create(req *models.CreateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		ID:        uuid.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
		INSERT INTO customers (id, name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecWithTimeout(query,
		customer.ID, customer.Name, customer.Phone, customer.Email,
		customer.CreatedAt, customer.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	return customer, nil
}

// GetByID obtiene un cliente por ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var customer models.Customer
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&customer.ID, &customer.Name, &customer.Phone, &customer.Email,
		&customer.CreatedAt, &customer.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("customer not found: %s", id)
		}
		return nil, fmt.Errorf("error querying customer: %w", err)
	}

	return &customer, nil
}

// Search busca clientes cuyo nombre, teléfono o email contengan el
// término, sin distinguir mayúsculas
func (r *CustomerRepository) Search(term string) ([]models.Customer, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM customers
		WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryWithTimeout(query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("error searching customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var customer models.Customer
		err := rows.Scan(
			&customer.ID, &customer.Name, &customer.Phone, &customer.Email,
			&customer.CreatedAt, &customer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// Count retorna el número de clientes registrados
func (r *CustomerRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRowWithTimeout(`SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting customers: %w", err)
	}

	return count, nil
}
