package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/sirupsen/logrus"
)

// SearchService maneja la búsqueda de texto libre sobre clientes y
// vehículos y el agrupado de resultados por cliente
type SearchService struct {
	customerStore CustomerStore
	vehicleStore  VehicleStore
	logger        *logrus.Logger
}

// NewSearchService crea una nueva instancia del servicio
func NewSearchService(customerStore CustomerStore, vehicleStore VehicleStore, logger *logrus.Logger) *SearchService {
	return &SearchService{
		customerStore: customerStore,
		vehicleStore:  vehicleStore,
		logger:        logger,
	}
}

// Search ejecuta dos búsquedas independientes (clientes por
// nombre/teléfono/email, vehículos por vin/placa/marca/modelo) y agrupa
// por cliente. Un cliente que coincidió por sus propios campos muestra
// TODOS sus vehículos; un vehículo que coincidió muestra a su dueño
// aunque el dueño no haya coincidido. Un vehículo cuyo customer_id no
// resuelve produce un grupo con customer nulo, agrupado por el string
// literal de la referencia.
func (s *SearchService) Search(query string) ([]models.SearchGroup, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []models.SearchGroup{}, nil
	}

	customers, err := s.customerStore.Search(term)
	if err != nil {
		return nil, fmt.Errorf("error searching customers: %w", err)
	}

	vehicles, err := s.vehicleStore.Search(term)
	if err != nil {
		return nil, fmt.Errorf("error searching vehicles: %w", err)
	}

	customersByID := make(map[string]*models.Customer, len(customers))
	for i := range customers {
		customersByID[customers[i].ID.String()] = &customers[i]
	}

	// Resolver dueños de vehículos coincidentes que no aparecieron en
	// la búsqueda de clientes. Una referencia mal formada o inexistente
	// no es un error: el grupo queda sin cliente.
	for _, vehicle := range vehicles {
		if _, ok := customersByID[vehicle.CustomerID]; ok {
			continue
		}

		ownerID, err := uuid.Parse(vehicle.CustomerID)
		if err != nil {
			continue
		}

		owner, err := s.customerStore.GetByID(ownerID)
		if err != nil {
			// Solo la ausencia del dueño deja el grupo sin cliente;
			// una falla real del almacén sí es un error
			if strings.Contains(err.Error(), "not found") {
				s.logger.WithField("customer_id", vehicle.CustomerID).Debug("Vehicle owner not resolvable")
				continue
			}
			return nil, fmt.Errorf("error resolving vehicle owner %s: %w", vehicle.CustomerID, err)
		}
		customersByID[vehicle.CustomerID] = owner
	}

	// Agrupar vehículos coincidentes por el string literal de su
	// customer_id
	groups := make(map[string]*models.SearchGroup)
	var order []string
	for _, vehicle := range vehicles {
		key := vehicle.CustomerID
		group, ok := groups[key]
		if !ok {
			group = &models.SearchGroup{
				Customer: customersByID[key],
				Vehicles: []models.Vehicle{},
			}
			groups[key] = group
			order = append(order, key)
		}
		group.Vehicles = append(group.Vehicles, vehicle)
	}

	// Agregar clientes coincidentes sin grupo de vehículos, con la
	// lista completa de sus vehículos (no solo los que coincidieron)
	for i := range customers {
		key := customers[i].ID.String()
		if _, ok := groups[key]; ok {
			continue
		}

		owned, err := s.vehicleStore.GetByCustomerID(key)
		if err != nil {
			return nil, fmt.Errorf("error fetching vehicles for customer %s: %w", key, err)
		}
		if owned == nil {
			owned = []models.Vehicle{}
		}

		groups[key] = &models.SearchGroup{
			Customer: &customers[i],
			Vehicles: owned,
		}
		order = append(order, key)
	}

	results := make([]models.SearchGroup, 0, len(order))
	for _, key := range order {
		results = append(results, *groups[key])
	}

	return results, nil
}
