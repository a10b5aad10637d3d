package main

import (
	"time"

	"github.com/makito233/fin-erp-yml-config/expression"
	"github.com/makito233/fin-erp-yml-config/mapping"
	"github.com/makito233/fin-erp-yml-config/payload"
)

// API request and response models

// ConfigRequest carries a mapping configuration either as a structured
// document or as raw YAML. When both are present the structured form wins.
type ConfigRequest struct {
	Configuration *mapping.Configuration `json:"configuration,omitempty"`
	YAML          string                 `json:"yaml,omitempty"`
}

// SimulateRequest represents the request body for payload simulation
type SimulateRequest struct {
	Configuration *mapping.Configuration `json:"configuration,omitempty"`
	YAML          string                 `json:"yaml,omitempty"`
	Context       *expression.Context    `json:"context,omitempty"`
	Country       string                 `json:"country,omitempty" example:"ES"`
}

// SimulateResponse represents the simulation result
type SimulateResponse struct {
	Payload map[string]any  `json:"payload"`
	Errors  []payload.Error `json:"errors"`
	Country string          `json:"country" example:"ES"`
}

// DefaultsResponse carries the extracted variables together with the default
// context built for them
type DefaultsResponse struct {
	Extracted *expression.Extracted `json:"extracted"`
	Context   *expression.Context   `json:"context"`
}

// ValidateResponse represents the validation result
type ValidateResponse struct {
	Valid  bool     `json:"valid" example:"true"`
	Errors []string `json:"errors"`
}

// CreateConfigurationRequest represents the request body for storing a
// configuration
type CreateConfigurationRequest struct {
	Name string `json:"name" example:"sap-order-payload-mapping"`
	YAML string `json:"yaml"`
}

// UpdateConfigurationRequest represents the request body for updating a
// stored configuration
type UpdateConfigurationRequest struct {
	Name string `json:"name" example:"sap-order-payload-mapping"`
	YAML string `json:"yaml"`
}

// ConfigurationResponse represents a stored configuration in API responses
type ConfigurationResponse struct {
	ID        string    `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name" example:"sap-order-payload-mapping"`
	YAML      string    `json:"yaml"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
}

// ConfigurationsListResponse represents the response for listing stored
// configurations
type ConfigurationsListResponse struct {
	Configurations []ConfigurationResponse `json:"configurations"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid request body"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

func toConfigurationResponse(c *mapping.StoredConfiguration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:        c.ID,
		Name:      c.Name,
		YAML:      c.YAML,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
