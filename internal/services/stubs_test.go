package services

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubCustomerStore struct {
	searchResults []models.Customer
	all           map[string]models.Customer
	created       []models.Customer
	countValue    int
	getByIDErr    error
	searchCalls   int
	getByIDCalls  int
	countCalls    int
}

func (s *stubCustomerStore) Create(req *models.CreateCustomerRequest) (*models.Customer, error) {
	customer := models.Customer{
		ID:    uuid.New(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	s.created = append(s.created, customer)
	return &customer, nil
}

func (s *stubCustomerStore) GetByID(id uuid.UUID) (*models.Customer, error) {
	s.getByIDCalls++
	if s.getByIDErr != nil {
		return nil, s.getByIDErr
	}
	if customer, ok := s.all[id.String()]; ok {
		return &customer, nil
	}
	return nil, fmt.Errorf("customer not found: %s", id)
}

func (s *stubCustomerStore) Search(term string) ([]models.Customer, error) {
	s.searchCalls++
	return s.searchResults, nil
}

func (s *stubCustomerStore) Count() (int, error) {
	s.countCalls++
	return s.countValue, nil
}

type stubVehicleStore struct {
	searchResults   []models.Vehicle
	byCustomer      map[string][]models.Vehicle
	created         []models.Vehicle
	searchCalls     int
	byCustomerCalls int
}

func (s *stubVehicleStore) Create(req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	vehicle := models.Vehicle{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		VIN:        req.VIN,
		Plate:      req.Plate,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Color:      req.Color,
	}
	s.created = append(s.created, vehicle)
	return &vehicle, nil
}

func (s *stubVehicleStore) GetByCustomerID(customerID string) ([]models.Vehicle, error) {
	s.byCustomerCalls++
	return s.byCustomer[customerID], nil
}

func (s *stubVehicleStore) Search(term string) ([]models.Vehicle, error) {
	s.searchCalls++
	return s.searchResults, nil
}

type stubInspectionStore struct {
	created []models.Inspection
	ops     *[]string
}

func (s *stubInspectionStore) Create(inspection *models.Inspection) error {
	if s.ops != nil {
		*s.ops = append(*s.ops, "inspection")
	}
	s.created = append(s.created, *inspection)
	return nil
}

type stubInvoiceStore struct {
	stored        map[string]*models.Invoice
	created       []models.Invoice
	createErr     error
	markPaidCalls int
	ops           *[]string
}

func (s *stubInvoiceStore) Create(invoice *models.Invoice) error {
	if s.createErr != nil {
		return s.createErr
	}
	if s.ops != nil {
		*s.ops = append(*s.ops, "invoice")
	}
	s.created = append(s.created, *invoice)
	return nil
}

func (s *stubInvoiceStore) GetByID(id uuid.UUID) (*models.Invoice, error) {
	if invoice, ok := s.stored[id.String()]; ok {
		return invoice, nil
	}
	return nil, fmt.Errorf("invoice not found: %s", id)
}

func (s *stubInvoiceStore) MarkPaid(id uuid.UUID) (int64, error) {
	s.markPaidCalls++
	if invoice, ok := s.stored[id.String()]; ok {
		invoice.Paid = true
		return 1, nil
	}
	return 0, nil
}
