// Package restapi implements the RESTful API layer, including DTOs and handlers.
package restapi

import "lei_validator/pkg/leiservice"

// ValidateRequest defines the expected JSON body for the POST /validate endpoint.
type ValidateRequest struct {
	LEI string `json:"lei"`
}

// BuildRequest defines the expected JSON body for the POST /build endpoint.
type BuildRequest struct {
	LOUID    string `json:"lou_id"`
	EntityID string `json:"entity_id"`
}

// BuildResponse defines the structure for the POST /build endpoint response (on success).
type BuildResponse struct {
	LEI string `json:"lei"`
}

// RegisterRequest defines the expected JSON body for the POST /identifiers endpoint.
type RegisterRequest struct {
	LEI string `json:"lei"`
}

// RegisterResponse defines the structure for the POST /identifiers endpoint response (on success).
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListIdentifiersResponse defines the structure for the GET /identifiers endpoint.
type ListIdentifiersResponse struct {
	Identifiers []leiservice.RegisteredIdentifier `json:"identifiers"`
}

// ErrorResponse defines a standard structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
