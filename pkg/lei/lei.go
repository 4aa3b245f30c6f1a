// Package lei implements parsing, validation and construction of Legal
// Entity Identifiers (LEIs) as defined in ISO 17442.
//
// An LEI is 20 uppercase ASCII alphanumeric characters: a 4-character LOU
// (Local Operating Unit) identifier, a 14-character entity identifier
// assigned by that LOU, and two decimal check digits computed with the
// ISO 7064 MOD 97-10 check character system.
package lei

import (
	"fmt"
	"strings"
)

// Lengths of the identifier and its fixed-offset segments.
const (
	Length         = 20
	PayloadLength  = 18
	LOUIDLength    = 4
	EntityIDLength = 14
)

// LEI represents a validated Legal Entity Identifier value object.
// The zero value is not a valid identifier; instances are obtained only
// through Parse, ParseLoose or the Build functions.
type LEI struct {
	value string
}

// Parse validates input as an LEI and returns it as a value object.
// Validation is strict: no trimming or case folding is performed, and the
// first failing check wins. The returned errors wrap the package sentinel
// errors, so callers can discriminate with errors.Is.
func Parse(input string) (LEI, error) {
	if len(input) != Length {
		return LEI{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(input), Length)
	}
	for i := 0; i < Length; i++ {
		if !isUpperAlphanumeric(input[i]) {
			return LEI{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, rune(input[i]), i)
		}
	}
	for i := PayloadLength; i < Length; i++ {
		if !isDigit(input[i]) {
			return LEI{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCheckDigitFormat, rune(input[i]), i)
		}
	}
	// A well-formed LEI leaves remainder 1 when the whole string, check
	// digits included, is reduced modulo 97.
	if r := mod97(input); r != 1 {
		return LEI{}, fmt.Errorf("%w: mod 97-10 remainder is %d, want 1", ErrInvalidCheckDigits, r)
	}
	return LEI{value: input}, nil
}

// ParseLoose is like Parse but trims surrounding whitespace and uppercases
// the input first. Use it for operator-supplied input; stored identifiers
// should go through Parse.
func ParseLoose(input string) (LEI, error) {
	return Parse(strings.ToUpper(strings.TrimSpace(input)))
}

// Validate reports whether input is a well-formed LEI without constructing
// a value object.
func Validate(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// BuildFromPayload constructs an LEI from an 18-character payload (the
// concatenated LOU ID and entity ID), computing the two check digits.
func BuildFromPayload(payload string) (LEI, error) {
	if len(payload) != PayloadLength {
		return LEI{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidPayloadLength, len(payload), PayloadLength)
	}
	for i := 0; i < PayloadLength; i++ {
		if !isUpperAlphanumeric(payload[i]) {
			return LEI{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, rune(payload[i]), i)
		}
	}
	return LEI{value: payload + checkDigits(payload)}, nil
}

// BuildFromParts constructs an LEI from a 4-character LOU ID and a
// 14-character entity ID, computing the two check digits.
func BuildFromParts(louID, entityID string) (LEI, error) {
	if len(louID) != LOUIDLength {
		return LEI{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLOUIDLength, len(louID), LOUIDLength)
	}
	if len(entityID) != EntityIDLength {
		return LEI{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidEntityIDLength, len(entityID), EntityIDLength)
	}
	return BuildFromPayload(louID + entityID)
}

// String returns the canonical 20-character representation.
func (l LEI) String() string {
	return l.value
}

// LOUID returns the identifier of the Local Operating Unit that issued the
// LEI (characters 1-4).
func (l LEI) LOUID() string {
	return l.segment(0, LOUIDLength)
}

// EntityID returns the LOU-assigned entity identifier (characters 5-18).
func (l LEI) EntityID() string {
	return l.segment(LOUIDLength, PayloadLength)
}

// Payload returns everything except the check digits (characters 1-18).
func (l LEI) Payload() string {
	return l.segment(0, PayloadLength)
}

// CheckDigits returns the two check digit characters (characters 19-20).
func (l LEI) CheckDigits() string {
	return l.segment(PayloadLength, Length)
}

// IsZero checks if the LEI is the zero value (empty).
func (l LEI) IsZero() bool {
	return l.value == ""
}

// Equals checks if two LEI objects are equal.
func (l LEI) Equals(other LEI) bool {
	return l.value == other.value
}

// segment slices the canonical string, tolerating the zero value.
func (l LEI) segment(from, to int) string {
	if l.value == "" {
		return ""
	}
	return l.value[from:to]
}

func isUpperAlphanumeric(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
