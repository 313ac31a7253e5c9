package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/garage-service/internal/api"
	"github.com/hypernova-labs/garage-service/internal/config"
	"github.com/hypernova-labs/garage-service/internal/database"
	"github.com/hypernova-labs/garage-service/internal/services"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting Garage Service...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	// Asegurar esquema
	if err := db.EnsureSchema(); err != nil {
		logger.Fatalf("Error ensuring database schema: %v", err)
	}

	// Conectar a Redis (opcional, solo para rate limiting y diagnóstico)
	var rateLimitStore api.RateLimitStore
	if redis, err := database.ConnectRedis(cfg); err != nil {
		logger.Warnf("Error connecting to Redis: %v", err)
	} else {
		defer redis.Close()
		rateLimitStore = redis
	}

	// Inicializar repositorios
	customerRepo := database.NewCustomerRepository(db, logger)
	vehicleRepo := database.NewVehicleRepository(db, logger)
	inspectionRepo := database.NewInspectionRepository(db, logger)
	invoiceRepo := database.NewInvoiceRepository(db, logger)

	// Inicializar servicios
	seedService := services.NewSeedService(customerRepo, vehicleRepo, logger)
	searchService := services.NewSearchService(customerRepo, vehicleRepo, logger)
	inspectionService := services.NewInspectionService(inspectionRepo, invoiceRepo, logger)
	invoiceService := services.NewInvoiceService(invoiceRepo, logger)

	// Inicializar API
	apiHandler := api.NewAPI(
		seedService,
		searchService,
		inspectionService,
		invoiceService,
		db,
		rateLimitStore,
		cfg.RateLimit.Default,
		logger,
	)

	// Configurar router
	router := setupRouter(apiHandler, cfg)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	// Contexto con timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful del servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nivel de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura el router principal
func setupRouter(apiHandler *api.API, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Middleware de CORS para desarrollo
	if cfg.IsDevelopment() {
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})
	}

	// Rate limiting por IP (no-op sin Redis)
	if cfg.RateLimit.Enabled {
		router.Use(apiHandler.RateLimitMiddleware())
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "garage-service",
			"version":   "1.0.0",
		})
	})

	// Endpoints del API
	router.GET("/", apiHandler.Root)
	router.POST("/seed", apiHandler.Seed)
	router.POST("/search", apiHandler.Search)
	router.POST("/inspections", apiHandler.CreateInspection)
	router.POST("/pay", apiHandler.PayInvoice)
	router.GET("/schema", apiHandler.GetSchema)
	router.GET("/test", apiHandler.TestDatabase)

	return router
}
