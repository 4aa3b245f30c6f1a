// Package domain defines the core domain models owned by the service layer.
package domain

import (
	"time"

	"lei_validator/pkg/lei"
)

// RegisteredIdentifier associates a validated LEI with the time it was added
// to the roster. The LEI itself guarantees its own validity by construction.
type RegisteredIdentifier struct {
	Code         lei.LEI
	RegisteredAt time.Time
}

// NewRegisteredIdentifier is a simple constructor for the roster entry.
func NewRegisteredIdentifier(code lei.LEI, registeredAt time.Time) RegisteredIdentifier {
	return RegisteredIdentifier{
		Code:         code,
		RegisteredAt: registeredAt,
	}
}
