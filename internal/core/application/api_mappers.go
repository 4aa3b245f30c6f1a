package application

import (
	"errors"

	"lei_validator/internal/core/domain"
	"lei_validator/pkg/lei"
	"lei_validator/pkg/leiservice"
)

// mapLEIToReport converts a validated LEI to a public API validation report.
func mapLEIToReport(code lei.LEI) leiservice.ValidationReport {
	return leiservice.ValidationReport{
		Valid:       true,
		LEI:         code.String(),
		LOUID:       code.LOUID(),
		EntityID:    code.EntityID(),
		CheckDigits: code.CheckDigits(),
	}
}

// mapErrorToReport converts a validation error to a public API rejection report.
func mapErrorToReport(err error) leiservice.ValidationReport {
	return leiservice.ValidationReport{
		Valid:     false,
		ErrorKind: errorKind(err),
		Reason:    err.Error(),
	}
}

// mapDomainToAPIIdentifier converts an internal roster entry to the public API DTO.
func mapDomainToAPIIdentifier(entry domain.RegisteredIdentifier) leiservice.RegisteredIdentifier {
	return leiservice.RegisteredIdentifier{
		LEI:          entry.Code.String(),
		LOUID:        entry.Code.LOUID(),
		EntityID:     entry.Code.EntityID(),
		RegisteredAt: entry.RegisteredAt,
	}
}

// errorKind maps the lei package sentinel errors to stable API kind strings.
func errorKind(err error) string {
	switch {
	case errors.Is(err, lei.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, lei.ErrInvalidCharacter):
		return "invalid_character"
	case errors.Is(err, lei.ErrInvalidCheckDigitFormat):
		return "invalid_check_digit_format"
	case errors.Is(err, lei.ErrInvalidCheckDigits):
		return "invalid_check_digits"
	case errors.Is(err, lei.ErrInvalidPayloadLength):
		return "invalid_payload_length"
	case errors.Is(err, lei.ErrInvalidLOUIDLength):
		return "invalid_lou_id_length"
	case errors.Is(err, lei.ErrInvalidEntityIDLength):
		return "invalid_entity_id_length"
	default:
		return "invalid"
	}
}
