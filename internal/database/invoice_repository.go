package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// InvoiceRepository maneja las operaciones de base de datos para Invoice
type InvoiceRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewInvoiceRepository crea una nueva instancia del repositorio
func NewInvoiceRepository(db *DB, logger *logrus.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// Create persiste una factura con sus líneas como JSONB
func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	lineItemsJSON, err := json.Marshal(invoice.LineItems)
	if err != nil {
		return fmt.Errorf("error marshaling line items: %w", err)
	}

	query := `
		INSERT INTO invoices (id, inspection_id, line_items, subtotal, taxes, total, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecWithTimeout(query,
		invoice.ID, invoice.InspectionID, lineItemsJSON,
		invoice.Subtotal, invoice.Taxes, invoice.Total, invoice.Paid,
		invoice.CreatedAt, invoice.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("error creating invoice: %w", err)
	}

	return nil
}

// GetByID obtiene una factura por ID
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	query := `
		SELECT id, inspection_id, line_items, subtotal, taxes, total, paid, created_at, updated_at
		FROM invoices
		WHERE id = $1
	`

	var invoice models.Invoice
	var lineItemsJSON []byte
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&invoice.ID, &invoice.InspectionID, &lineItemsJSON,
		&invoice.Subtotal, &invoice.Taxes, &invoice.Total, &invoice.Paid,
		&invoice.CreatedAt, &invoice.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invoice not found: %s", id)
		}
		return nil, fmt.Errorf("error querying invoice: %w", err)
	}

	if err := json.Unmarshal(lineItemsJSON, &invoice.LineItems); err != nil {
		return nil, fmt.Errorf("error unmarshaling line items: %w", err)
	}

	return &invoice, nil
}

// MarkPaid marca una factura como pagada y retorna cuántas filas
// coincidieron. Repetir la operación sobre una factura ya pagada es
// un no-op exitoso.
func (r *InvoiceRepository) MarkPaid(id uuid.UUID) (int64, error) {
	query := `
		UPDATE invoices
		SET paid = TRUE, updated_at = $1
		WHERE id = $2
	`

	result, err := r.db.ExecWithTimeout(query, time.Now(), id)
	if err != nil {
		return 0, fmt.Errorf("error marking invoice paid: %w", err)
	}

	matched, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return matched, nil
}
