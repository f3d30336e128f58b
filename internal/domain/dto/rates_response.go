package dto

import "github.com/guttosm/ratepulse/internal/domain/models"

// PropertiesResponse represents the JSON structure returned by the
// GET /api/v1/properties endpoint.
//
// Fields match the API contract and may differ from internal domain
// models. This keeps the API surface decoupled from business logic.
type PropertiesResponse struct {
	Properties []models.Property `json:"properties"`
}
