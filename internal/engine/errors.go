package engine

import "github.com/cockroachdb/errors"

var (
	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates an input file was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedFormat indicates an input format that cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
