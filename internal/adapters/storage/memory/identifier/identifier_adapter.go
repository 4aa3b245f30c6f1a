// Package identifier provides an in-memory implementation of the IdentifierRepository interface.
package identifier

import (
	"context"
	"sort"
	"sync"

	"lei_validator/internal/core/domain"
	"lei_validator/internal/core/domain/repository"
	"lei_validator/pkg/lei"
)

// InMemoryIdentifierRepo implements the IdentifierRepository interface using an in-memory map.
type InMemoryIdentifierRepo struct {
	mu          sync.RWMutex
	identifiers map[lei.LEI]domain.RegisteredIdentifier
}

// Compile-time check to ensure InMemoryIdentifierRepo implements repository.IdentifierRepository
var _ repository.IdentifierRepository = (*InMemoryIdentifierRepo)(nil)

// NewInMemoryIdentifierRepo creates a new in-memory identifier repository.
func NewInMemoryIdentifierRepo() *InMemoryIdentifierRepo {
	return &InMemoryIdentifierRepo{
		identifiers: make(map[lei.LEI]domain.RegisteredIdentifier),
	}
}

// Add persists a new roster entry. Re-registering an existing identifier
// keeps the original entry.
func (r *InMemoryIdentifierRepo) Add(_ context.Context, identifier domain.RegisteredIdentifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.identifiers[identifier.Code]; !exists {
		r.identifiers[identifier.Code] = identifier
	}
	return nil
}

// Exists checks if a given LEI is already on the roster.
func (r *InMemoryIdentifierRepo) Exists(_ context.Context, code lei.LEI) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.identifiers[code]
	return exists, nil
}

// FindAll retrieves all roster entries, ordered by canonical string.
func (r *InMemoryIdentifierRepo) FindAll(_ context.Context) ([]domain.RegisteredIdentifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.RegisteredIdentifier, 0, len(r.identifiers))
	for _, entry := range r.identifiers {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code.String() < entries[j].Code.String()
	})
	return entries, nil
}
