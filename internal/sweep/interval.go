package sweep

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Interval is a closed time span [Start, End]. Start must not exceed End.
type Interval struct {
	Start float64
	End   float64
}

// Validate reports whether the interval is well formed.
func (iv Interval) Validate() error {
	if !finite(iv.Start) || !finite(iv.End) {
		return errors.Wrapf(ErrNonFiniteTime, "%s", iv)
	}
	if iv.Start > iv.End {
		return errors.Wrapf(ErrInvalidInterval, "start %g is after end %g", iv.Start, iv.End)
	}
	return nil
}

// ZeroWidth returns true if the interval starts and ends at the same time.
func (iv Interval) ZeroWidth() bool {
	return iv.Start == iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("(%g, %g)", iv.Start, iv.End)
}

// ValidateAll validates every interval and rejects the batch on the first
// malformed one.
func ValidateAll(intervals []Interval) error {
	for i, iv := range intervals {
		if err := iv.Validate(); err != nil {
			return errors.Wrapf(err, "interval %d", i)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
