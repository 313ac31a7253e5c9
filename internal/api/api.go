package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/database"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/hypernova-labs/garage-service/internal/services"
	"github.com/sirupsen/logrus"
)

// API maneja todos los endpoints de la API
type API struct {
	seedService       *services.SeedService
	searchService     *services.SearchService
	inspectionService *services.InspectionService
	invoiceService    *services.InvoiceService
	db                *database.DB
	redis             RateLimitStore
	rateLimit         int
	logger            *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	seedService *services.SeedService,
	searchService *services.SearchService,
	inspectionService *services.InspectionService,
	invoiceService *services.InvoiceService,
	db *database.DB,
	redis RateLimitStore,
	rateLimit int,
	logger *logrus.Logger,
) *API {
	return &API{
		seedService:       seedService,
		searchService:     searchService,
		inspectionService: inspectionService,
		invoiceService:    invoiceService,
		db:                db,
		redis:             redis,
		rateLimit:         rateLimit,
		logger:            logger,
	}
}

// Root responde el mensaje de vida del servicio
func (api *API) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Car Inspection API running",
	})
}

// Seed carga los datos demo de forma idempotente
func (api *API) Seed(c *gin.Context) {
	response, err := api.seedService.Seed()
	if err != nil {
		api.logger.WithError(err).Error("Error seeding demo data")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error seeding demo data"))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Search busca clientes y vehículos por texto libre
func (api *API) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding search request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	results, err := api.searchService.Search(req.Q)
	if err != nil {
		api.logger.WithError(err).Error("Error searching")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error searching"))
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{Results: results})
}

// CreateInspection crea una inspección y su factura derivada
func (api *API) CreateInspection(c *gin.Context) {
	var req models.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create inspection request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	// Validar ids antes de tocar el almacén. Solo formato: la
	// existencia de cliente y vehículo no se verifica.
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		c.JSON(http.StatusBadRequest, models.NewInvalidIdentifierError("customer_id"))
		return
	}
	if _, err := uuid.Parse(req.VehicleID); err != nil {
		c.JSON(http.StatusBadRequest, models.NewInvalidIdentifierError("vehicle_id"))
		return
	}

	response, err := api.inspectionService.Create(&req)
	if err != nil {
		api.logger.WithError(err).Error("Error creating inspection")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error creating inspection"))
		return
	}

	c.JSON(http.StatusOK, response)
}

// PayInvoice marca una factura como pagada
func (api *API) PayInvoice(c *gin.Context) {
	var req models.PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding pay invoice request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	id, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewInvalidIdentifierError("invoice_id"))
		return
	}

	invoice, err := api.invoiceService.Pay(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Invoice not found"))
			return
		}
		api.logger.WithError(err).Error("Error paying invoice")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error paying invoice"))
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// GetSchema retorna la lista estática de colecciones del API
func (api *API) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, models.SchemaResponse{
		Collections: database.Collections,
	})
}

// TestDatabase es el diagnóstico de conectividad del almacén. Nunca
// falla el proceso: reporta el estado que pueda observar.
func (api *API) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not_available",
		"connection_status": "not_connected",
		"collections":       []string{},
		"pghost_set":        os.Getenv("PGHOST") != "",
		"pgdatabase_set":    os.Getenv("PGDATABASE") != "",
		"redis":             "not_configured",
	}

	if api.db != nil {
		if err := api.db.HealthCheck(); err != nil {
			response["database"] = "error: " + err.Error()
		} else {
			response["database"] = "connected"
			response["connection_status"] = "connected"
			response["pool_stats"] = api.db.GetStats()

			if tables, err := api.db.ListTables(); err == nil {
				response["collections"] = tables
			}
		}
	}

	if api.redis != nil {
		if err := api.redis.HealthCheck(); err != nil {
			response["redis"] = "error: " + err.Error()
		} else {
			response["redis"] = "connected"
		}
	}

	c.JSON(http.StatusOK, response)
}
