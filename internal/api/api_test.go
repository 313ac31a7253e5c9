package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/hypernova-labs/garage-service/internal/services"
	"github.com/sirupsen/logrus"
)

type stubCustomerStore struct {
	searchResults []models.Customer
	countValue    int
	searchCalls   int
}

func (s *stubCustomerStore) Create(req *models.CreateCustomerRequest) (*models.Customer, error) {
	return &models.Customer{ID: uuid.New(), Name: req.Name, Phone: req.Phone, Email: req.Email}, nil
}

func (s *stubCustomerStore) GetByID(id uuid.UUID) (*models.Customer, error) {
	return nil, fmt.Errorf("customer not found: %s", id)
}

func (s *stubCustomerStore) Search(term string) ([]models.Customer, error) {
	s.searchCalls++
	return s.searchResults, nil
}

func (s *stubCustomerStore) Count() (int, error) {
	return s.countValue, nil
}

type stubVehicleStore struct {
	searchResults []models.Vehicle
	searchCalls   int
}

func (s *stubVehicleStore) Create(req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	return &models.Vehicle{ID: uuid.New(), CustomerID: req.CustomerID}, nil
}

func (s *stubVehicleStore) GetByCustomerID(customerID string) ([]models.Vehicle, error) {
	return nil, nil
}

func (s *stubVehicleStore) Search(term string) ([]models.Vehicle, error) {
	s.searchCalls++
	return s.searchResults, nil
}

type stubInspectionStore struct {
	created int
}

func (s *stubInspectionStore) Create(inspection *models.Inspection) error {
	s.created++
	return nil
}

type stubInvoiceStore struct {
	stored  map[string]*models.Invoice
	created int
}

func (s *stubInvoiceStore) Create(invoice *models.Invoice) error {
	s.created++
	return nil
}

func (s *stubInvoiceStore) GetByID(id uuid.UUID) (*models.Invoice, error) {
	if invoice, ok := s.stored[id.String()]; ok {
		return invoice, nil
	}
	return nil, fmt.Errorf("invoice not found: %s", id)
}

func (s *stubInvoiceStore) MarkPaid(id uuid.UUID) (int64, error) {
	if invoice, ok := s.stored[id.String()]; ok {
		invoice.Paid = true
		return 1, nil
	}
	return 0, nil
}

type testStores struct {
	customers   *stubCustomerStore
	vehicles    *stubVehicleStore
	inspections *stubInspectionStore
	invoices    *stubInvoiceStore
}

func setupTestRouter() (*gin.Engine, *testStores) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	stores := &testStores{
		customers:   &stubCustomerStore{},
		vehicles:    &stubVehicleStore{},
		inspections: &stubInspectionStore{},
		invoices:    &stubInvoiceStore{stored: map[string]*models.Invoice{}},
	}

	apiHandler := NewAPI(
		services.NewSeedService(stores.customers, stores.vehicles, logger),
		services.NewSearchService(stores.customers, stores.vehicles, logger),
		services.NewInspectionService(stores.inspections, stores.invoices, logger),
		services.NewInvoiceService(stores.invoices, logger),
		nil,
		nil,
		0,
		logger,
	)

	router := gin.New()
	router.GET("/", apiHandler.Root)
	router.POST("/seed", apiHandler.Seed)
	router.POST("/search", apiHandler.Search)
	router.POST("/inspections", apiHandler.CreateInspection)
	router.POST("/pay", apiHandler.PayInvoice)
	router.GET("/schema", apiHandler.GetSchema)

	return router, stores
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRootLiveness(t *testing.T) {
	router, _ := setupTestRouter()

	rec := doJSON(router, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["message"] == "" {
		t.Error("expected a liveness message")
	}
}

func TestCreateInspectionRejectsMalformedCustomerID(t *testing.T) {
	router, stores := setupTestRouter()

	body := fmt.Sprintf(`{"customer_id":"not-an-id","vehicle_id":%q,"checks":{"brakes":{"pads":"ok"}}}`, uuid.NewString())
	rec := doJSON(router, http.MethodPost, "/inspections", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if errResp.Error.Code != string(models.ErrorCodeInvalidIdentifier) {
		t.Errorf("expected INVALID_IDENTIFIER, got %s", errResp.Error.Code)
	}

	// El rechazo ocurre antes de cualquier escritura
	if stores.inspections.created != 0 || stores.invoices.created != 0 {
		t.Errorf("expected no writes, got %d inspections and %d invoices",
			stores.inspections.created, stores.invoices.created)
	}
}

func TestCreateInspectionReturnsDerivedInvoice(t *testing.T) {
	router, stores := setupTestRouter()

	body := fmt.Sprintf(`{"customer_id":%q,"vehicle_id":%q,"checks":{"brakes":{"pads":"attention","discs":"fail"}}}`,
		uuid.NewString(), uuid.NewString())
	rec := doJSON(router, http.MethodPost, "/inspections", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response models.InspectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.InspectionID == "" || response.InvoiceID == "" {
		t.Error("expected inspection and invoice ids in response")
	}
	// 25 + 60 + 49 = 134.00, impuestos 10.72
	if response.Invoice == nil || response.Invoice.Total != 144.72 {
		t.Errorf("unexpected invoice in response: %+v", response.Invoice)
	}
	if stores.inspections.created != 1 || stores.invoices.created != 1 {
		t.Errorf("expected 1 inspection and 1 invoice write, got %d and %d",
			stores.inspections.created, stores.invoices.created)
	}
}

func TestPayInvoiceRejectsMalformedID(t *testing.T) {
	router, _ := setupTestRouter()

	rec := doJSON(router, http.MethodPost, "/pay", `{"invoice_id":"garbage"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if errResp.Error.Code != string(models.ErrorCodeInvalidIdentifier) {
		t.Errorf("expected INVALID_IDENTIFIER, got %s", errResp.Error.Code)
	}
}

func TestPayInvoiceNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	rec := doJSON(router, http.MethodPost, "/pay", fmt.Sprintf(`{"invoice_id":%q}`, uuid.NewString()))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if errResp.Error.Code != string(models.ErrorCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %s", errResp.Error.Code)
	}
}

func TestPayInvoiceReturnsUpdatedDocument(t *testing.T) {
	router, stores := setupTestRouter()

	id := uuid.New()
	stores.invoices.stored[id.String()] = &models.Invoice{ID: id, Total: 52.92, Paid: false}

	rec := doJSON(router, http.MethodPost, "/pay", fmt.Sprintf(`{"invoice_id":%q}`, id))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var invoice models.Invoice
	if err := json.Unmarshal(rec.Body.Bytes(), &invoice); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !invoice.Paid {
		t.Error("expected paid=true in response")
	}
}

func TestSearchBlankQueryReturnsEmptyResults(t *testing.T) {
	router, stores := setupTestRouter()

	rec := doJSON(router, http.MethodPost, "/search", `{"q":"   "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Results) != 0 {
		t.Errorf("expected empty results, got %d", len(response.Results))
	}
	if stores.customers.searchCalls != 0 || stores.vehicles.searchCalls != 0 {
		t.Error("expected no store access for blank query")
	}
}

func TestGetSchemaListsCollections(t *testing.T) {
	router, _ := setupTestRouter()

	rec := doJSON(router, http.MethodGet, "/schema", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response models.SchemaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Collections) != 4 {
		t.Fatalf("expected 4 collections, got %v", response.Collections)
	}
}

func TestSeedEndpointIsIdempotent(t *testing.T) {
	router, stores := setupTestRouter()

	rec := doJSON(router, http.MethodPost, "/seed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	// Segunda llamada con datos ya presentes
	stores.customers.countValue = 2
	rec = doJSON(router, http.MethodPost, "/seed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response models.SeedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Message != "Already seeded" {
		t.Errorf("expected Already seeded, got %q", response.Message)
	}
}
