package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// InvoiceService maneja la lógica de negocio para facturas
type InvoiceService struct {
	invoiceStore InvoiceStore
	logger       *logrus.Logger
}

// NewInvoiceService crea una nueva instancia del servicio
func NewInvoiceService(invoiceStore InvoiceStore, logger *logrus.Logger) *InvoiceService {
	return &InvoiceService{
		invoiceStore: invoiceStore,
		logger:       logger,
	}
}

// Pay marca una factura como pagada y retorna el documento
// actualizado. Volver a pagar una factura ya pagada es un no-op
// exitoso; paid nunca vuelve a false.
func (s *InvoiceService) Pay(id uuid.UUID) (*models.Invoice, error) {
	matched, err := s.invoiceStore.MarkPaid(id)
	if err != nil {
		return nil, fmt.Errorf("error paying invoice: %w", err)
	}

	if matched == 0 {
		return nil, fmt.Errorf("invoice not found: %s", id)
	}

	invoice, err := s.invoiceStore.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting paid invoice: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"invoice_id": id,
		"total":      invoice.Total,
	}).Info("Invoice marked as paid")

	return invoice, nil
}
