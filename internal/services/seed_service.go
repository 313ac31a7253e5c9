package services

import (
	"fmt"

	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// SeedService maneja la carga idempotente de datos demo
type SeedService struct {
	customerStore CustomerStore
	vehicleStore  VehicleStore
	logger        *logrus.Logger
}

// NewSeedService crea una nueva instancia del servicio
func NewSeedService(customerStore CustomerStore, vehicleStore VehicleStore, logger *logrus.Logger) *SeedService {
	return &SeedService{
		customerStore: customerStore,
		vehicleStore:  vehicleStore,
		logger:        logger,
	}
}

// strPtr retorna un puntero al string dado
func strPtr(s string) *string {
	return &s
}

// Seed inserta 2 clientes y 3 vehículos demo. Si ya existe algún
// cliente no escribe nada: la segunda invocación es un no-op.
func (s *SeedService) Seed() (*models.SeedResponse, error) {
	count, err := s.customerStore.Count()
	if err != nil {
		return nil, fmt.Errorf("error checking existing customers: %w", err)
	}

	if count > 0 {
		return &models.SeedResponse{Status: "ok", Message: "Already seeded"}, nil
	}

	alex, err := s.customerStore.Create(&models.CreateCustomerRequest{
		Name:  "Alex Johnson",
		Phone: "+1 555-101-2020",
		Email: "alex.j@example.com",
	})
	if err != nil {
		return nil, fmt.Errorf("error seeding customer: %w", err)
	}

	maria, err := s.customerStore.Create(&models.CreateCustomerRequest{
		Name:  "Maria Gomez",
		Phone: "+1 555-303-4040",
		Email: "maria.g@example.com",
	})
	if err != nil {
		return nil, fmt.Errorf("error seeding customer: %w", err)
	}

	vehicles := []*models.CreateVehicleRequest{
		{
			CustomerID: alex.ID.String(),
			VIN:        "1HGCM82633A004352",
			Plate:      "AJX-4521",
			Make:       "Honda",
			Model:      "Civic",
			Year:       2018,
			Color:      strPtr("Blue"),
		},
		{
			CustomerID: alex.ID.String(),
			VIN:        "1FTFW1ET1EKE12345",
			Plate:      "TRK-9087",
			Make:       "Ford",
			Model:      "F-150",
			Year:       2014,
			Color:      strPtr("Black"),
		},
		{
			CustomerID: maria.ID.String(),
			VIN:        "JH4KA4650MC123456",
			Plate:      "MGM-2277",
			Make:       "Acura",
			Model:      "Legend",
			Year:       1991,
			Color:      strPtr("Red"),
		},
	}

	for _, req := range vehicles {
		if _, err := s.vehicleStore.Create(req); err != nil {
			return nil, fmt.Errorf("error seeding vehicle: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"customers": 2,
		"vehicles":  len(vehicles),
	}).Info("Demo data seeded")

	return &models.SeedResponse{Status: "ok", Message: "Seeded"}, nil
}
