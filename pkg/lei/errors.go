package lei

import "errors"

var (
	// ErrInvalidLength indicates that the input is not exactly 20 characters.
	ErrInvalidLength = errors.New("invalid LEI length")

	// ErrInvalidCharacter indicates a character outside A-Z0-9 (lowercase
	// letters included).
	ErrInvalidCharacter = errors.New("invalid LEI character")

	// ErrInvalidCheckDigitFormat indicates that one of the last two
	// characters is not a decimal digit.
	ErrInvalidCheckDigitFormat = errors.New("invalid LEI check digit format")

	// ErrInvalidCheckDigits indicates that the MOD 97-10 check failed.
	ErrInvalidCheckDigits = errors.New("incorrect LEI check digits")

	// ErrInvalidPayloadLength indicates that a payload passed to
	// BuildFromPayload is not exactly 18 characters.
	ErrInvalidPayloadLength = errors.New("invalid LEI payload length")

	// ErrInvalidLOUIDLength indicates that a LOU ID passed to
	// BuildFromParts is not exactly 4 characters.
	ErrInvalidLOUIDLength = errors.New("invalid LOU ID length")

	// ErrInvalidEntityIDLength indicates that an entity ID passed to
	// BuildFromParts is not exactly 14 characters.
	ErrInvalidEntityIDLength = errors.New("invalid entity ID length")
)
