package sweep

// Solution holds every stage of a sweep.
type Solution struct {
	Intervals   []Interval
	Breakpoints []Breakpoint
	Counts      []int
	MaxOverlap  []int
}

type options struct {
	tieBreak TieBreak
}

// Option configures a sweep.
type Option func(*options)

// WithTieBreak selects the ordering of equal-time breakpoints.
func WithTieBreak(tb TieBreak) Option {
	return func(o *options) { o.tieBreak = tb }
}

// Solve returns the maximum overlap of every interval, aligned with the input.
// An empty batch yields an empty result.
func Solve(intervals []Interval, opts ...Option) ([]int, error) {
	sol, err := Sweep(intervals, opts...)
	if err != nil {
		return nil, err
	}
	return sol.MaxOverlap, nil
}

// Sweep validates the batch and runs all three stages.
func Sweep(intervals []Interval, opts ...Option) (*Solution, error) {
	o := options{tieBreak: EndFirst}
	for _, opt := range opts {
		opt(&o)
	}

	if err := ValidateAll(intervals); err != nil {
		return nil, err
	}

	bps := BuildBreakpoints(intervals, o.tieBreak)
	counts := StackCounts(bps)
	return &Solution{
		Intervals:   intervals,
		Breakpoints: bps,
		Counts:      counts,
		MaxOverlap:  ResolveMaxOverlap(len(intervals), bps, counts),
	}, nil
}

// Widths converts maximum overlaps to display widths (1/k).
func Widths(maxOverlap []int) []float64 {
	widths := make([]float64, len(maxOverlap))
	for i, k := range maxOverlap {
		if k > 0 {
			widths[i] = 1 / float64(k)
		}
	}
	return widths
}
