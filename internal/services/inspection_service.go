package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// InspectionService maneja el alta de inspecciones y la factura derivada
type InspectionService struct {
	inspectionStore InspectionStore
	invoiceStore    InvoiceStore
	logger          *logrus.Logger
}

// NewInspectionService crea una nueva instancia del servicio
func NewInspectionService(inspectionStore InspectionStore, invoiceStore InvoiceStore, logger *logrus.Logger) *InspectionService {
	return &InspectionService{
		inspectionStore: inspectionStore,
		invoiceStore:    invoiceStore,
		logger:          logger,
	}
}

// Create persiste la inspección, deriva su factura y la persiste.
// Los ids referenciados ya llegan validados sintácticamente; su
// existencia no se verifica (referencias débiles). Son dos escrituras
// no atómicas, inspección y luego factura: si la segunda falla queda
// una inspección huérfana sin factura.
func (s *InspectionService) Create(req *models.CreateInspectionRequest) (*models.InspectionResponse, error) {
	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}

	inspection := &models.Inspection{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		Checks:     req.Checks,
		Notes:      req.Notes,
		Photos:     photos,
		Status:     models.InspectionStatusComplete,
		CreatedAt:  time.Now(),
	}

	if err := s.inspectionStore.Create(inspection); err != nil {
		return nil, fmt.Errorf("error creating inspection: %w", err)
	}

	invoice := DeriveInvoice(req.Checks)
	invoice.ID = uuid.New()
	invoice.InspectionID = inspection.ID.String()
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt

	if err := s.invoiceStore.Create(invoice); err != nil {
		return nil, fmt.Errorf("error creating invoice for inspection %s: %w", inspection.ID, err)
	}

	s.logger.WithFields(logrus.Fields{
		"inspection_id": inspection.ID,
		"invoice_id":    invoice.ID,
		"total":         invoice.Total,
	}).Info("Inspection created with derived invoice")

	return &models.InspectionResponse{
		InspectionID: inspection.ID.String(),
		InvoiceID:    invoice.ID.String(),
		Invoice:      invoice,
	}, nil
}
