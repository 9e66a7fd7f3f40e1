package sweep

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInterval indicates an interval whose start is after its end.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrNonFiniteTime indicates an interval endpoint that is NaN or infinite.
	ErrNonFiniteTime = errors.New("non-finite time")
)
