package models

// SearchRequest representa el request de búsqueda de texto libre
type SearchRequest struct {
	Q string `json:"q"`
}

// SearchGroup representa un grupo de resultados: un cliente con sus
// vehículos. Customer puede ser nil cuando el customer_id del vehículo
// no resuelve a ningún cliente (referencia débil rota).
type SearchGroup struct {
	Customer *Customer `json:"customer"`
	Vehicles []Vehicle `json:"vehicles"`
}

// SearchResponse representa la respuesta de búsqueda
type SearchResponse struct {
	Results []SearchGroup `json:"results"`
}

// SeedResponse representa la respuesta del seeding de datos demo
type SeedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SchemaResponse representa la lista de colecciones del API
type SchemaResponse struct {
	Collections []string `json:"collections"`
}
