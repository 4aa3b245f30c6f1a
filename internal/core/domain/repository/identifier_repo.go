// Package repository defines interfaces for data storage and retrieval operations.
package repository

import (
	"context"

	"lei_validator/internal/core/domain"
	"lei_validator/pkg/lei"
)

// IdentifierRepository defines the interface for managing the roster of
// registered identifiers.
type IdentifierRepository interface {
	// Add persists a new roster entry.
	Add(ctx context.Context, identifier domain.RegisteredIdentifier) error

	// Exists checks if a given LEI is already on the roster.
	Exists(ctx context.Context, code lei.LEI) (bool, error)

	// FindAll retrieves all roster entries, ordered by canonical string.
	FindAll(ctx context.Context) ([]domain.RegisteredIdentifier, error)
}
