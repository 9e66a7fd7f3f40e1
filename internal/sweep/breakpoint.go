package sweep

import (
	"cmp"
	"fmt"
	"slices"
)

// Cap marks a breakpoint as the beginning or the end of an interval.
type Cap uint8

const (
	// End closes an interval.
	End Cap = iota
	// Start opens an interval.
	Start
)

func (c Cap) String() string {
	switch c {
	case End:
		return "End"
	case Start:
		return "Start"
	default:
		return fmt.Sprintf("Cap(%d)", uint8(c))
	}
}

// TieBreak decides the order of Start and End breakpoints sharing a time.
type TieBreak uint8

const (
	// EndFirst orders End before Start, so intervals that only touch do not
	// overlap. This is the default.
	EndFirst TieBreak = iota
	// StartFirst orders Start before End, so touching intervals overlap.
	StartFirst
)

func (tb TieBreak) String() string {
	switch tb {
	case EndFirst:
		return "end-first"
	case StartFirst:
		return "start-first"
	default:
		return fmt.Sprintf("TieBreak(%d)", uint8(tb))
	}
}

// ParseTieBreak parses the names produced by TieBreak.String.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "end-first":
		return EndFirst, nil
	case "start-first":
		return StartFirst, nil
	default:
		return EndFirst, fmt.Errorf("unknown tie-break %q (want end-first or start-first)", s)
	}
}

// Breakpoint is one endpoint of an input interval.
type Breakpoint struct {
	Time float64
	Cap  Cap
	// Source is the index of the interval that produced the breakpoint.
	Source int
}

func (b Breakpoint) String() string {
	return fmt.Sprintf("(%g, %s)", b.Time, b.Cap)
}

// BuildBreakpoints emits a Start and an End breakpoint per interval and sorts
// them by time. Equal times are ordered by tb; a zero-width interval always
// keeps its own Start ahead of its own End. Remaining ties keep input order.
func BuildBreakpoints(intervals []Interval, tb TieBreak) []Breakpoint {
	bps := make([]Breakpoint, 0, 2*len(intervals))
	for i, iv := range intervals {
		bps = append(bps,
			Breakpoint{Time: iv.Start, Cap: Start, Source: i},
			Breakpoint{Time: iv.End, Cap: End, Source: i},
		)
	}

	slices.SortStableFunc(bps, func(a, b Breakpoint) int {
		if c := cmp.Compare(a.Time, b.Time); c != 0 {
			return c
		}
		return cmp.Compare(rank(a, intervals, tb), rank(b, intervals, tb))
	})
	return bps
}

// rank orders breakpoints that share a time.
//
// EndFirst: 0 end of a wide interval, 1 start of a zero-width interval,
// 2 end of a zero-width interval, 3 start of a wide interval.
// StartFirst: 0 start, 1 end.
func rank(b Breakpoint, intervals []Interval, tb TieBreak) int {
	if tb == StartFirst {
		if b.Cap == Start {
			return 0
		}
		return 1
	}
	if intervals[b.Source].ZeroWidth() {
		if b.Cap == Start {
			return 1
		}
		return 2
	}
	if b.Cap == End {
		return 0
	}
	return 3
}
