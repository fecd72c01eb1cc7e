package parameters

import "errors"

var (
	// ErrParameterNotFound is returned when no source holds the requested key.
	ErrParameterNotFound = errors.New("parameter not found")
	// ErrInvalidKey is returned for empty or whitespace-only parameter keys.
	ErrInvalidKey = errors.New("parameter key must not be empty")
)
