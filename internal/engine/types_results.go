package engine

import "github.com/danieljhkim/overlap/internal/sweep"

// SolveResult represents the outcome of a solve.
type SolveResult struct {
	// Source describes where the intervals came from
	Source string `json:"source"`

	// TieBreak is the policy that ordered equal-time breakpoints
	TieBreak string `json:"tie_break"`

	// Meetings holds one row per input interval, in input order
	Meetings []MeetingResult `json:"meetings"`

	// Breakpoints is the sorted sweep order with the count after each step
	Breakpoints []BreakpointResult `json:"breakpoints"`

	// ReportPath is where the report was written (empty if not requested)
	ReportPath string `json:"report_path,omitempty"`
}

// MeetingResult is the solution for a single interval.
type MeetingResult struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	MaxOverlap int     `json:"max_overlap"`
	Width      float64 `json:"width"`
}

// BreakpointResult is one step of the sweep.
type BreakpointResult struct {
	Time   float64 `json:"time"`
	Cap    string  `json:"cap"`
	Source int     `json:"source"`
	Open   int     `json:"open"`
}

// MaxOverlap returns the per-interval maxima in input order.
func (r *SolveResult) MaxOverlap() []int {
	out := make([]int, len(r.Meetings))
	for i, m := range r.Meetings {
		out[i] = m.MaxOverlap
	}
	return out
}

func newSolveResult(source string, tb sweep.TieBreak, sol *sweep.Solution) *SolveResult {
	widths := sweep.Widths(sol.MaxOverlap)
	res := &SolveResult{
		Source:      source,
		TieBreak:    tb.String(),
		Meetings:    make([]MeetingResult, len(sol.Intervals)),
		Breakpoints: make([]BreakpointResult, len(sol.Breakpoints)),
	}
	for i, iv := range sol.Intervals {
		res.Meetings[i] = MeetingResult{
			Start:      iv.Start,
			End:        iv.End,
			MaxOverlap: sol.MaxOverlap[i],
			Width:      widths[i],
		}
	}
	for i, bp := range sol.Breakpoints {
		res.Breakpoints[i] = BreakpointResult{
			Time:   bp.Time,
			Cap:    bp.Cap.String(),
			Source: bp.Source,
			Open:   sol.Counts[i],
		}
	}
	return res
}
