// Package leiservice defines the public API contracts for the LEI validation service.
package leiservice

import (
	"context"
	"time"
)

// ValidationReport represents the outcome of validating a candidate identifier.
// A malformed input is a report with Valid=false, not an error.
type ValidationReport struct {
	Valid       bool   `json:"valid"`
	LEI         string `json:"lei,omitempty"`
	LOUID       string `json:"lou_id,omitempty"`
	EntityID    string `json:"entity_id,omitempty"`
	CheckDigits string `json:"check_digits,omitempty"`
	ErrorKind   string `json:"error_kind,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// RegisteredIdentifier represents an identifier on the caller-maintained roster.
type RegisteredIdentifier struct {
	LEI          string    `json:"lei"`
	LOUID        string    `json:"lou_id"`
	EntityID     string    `json:"entity_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Validator defines the public interface for the LEI validation service.
type Validator interface {
	// Validate classifies a candidate string and returns a structured report.
	// The error return is reserved for infrastructure failures; rejection of
	// malformed input is expressed in the report itself.
	Validate(ctx context.Context, input string) (report ValidationReport, err error)

	// Build assembles a complete LEI from a LOU ID and an entity ID,
	// computing the check digits.
	Build(ctx context.Context, louID, entityID string) (code string, err error)

	// Register validates an identifier strictly and adds it to the roster.
	Register(ctx context.Context, input string) (err error)

	// ListRegistered returns all identifiers on the roster.
	ListRegistered(ctx context.Context) (identifiers []RegisteredIdentifier, err error)
}
