package sweep

import "math/bits"

// ResolveMaxOverlap returns, for each of the n source intervals, the largest
// stack count between the interval's own Start and End breakpoints. bps and
// counts must come from BuildBreakpoints and StackCounts over the same batch.
func ResolveMaxOverlap(n int, bps []Breakpoint, counts []int) []int {
	startPos := make([]int, n)
	endPos := make([]int, n)
	for i, bp := range bps {
		if bp.Cap == Start {
			startPos[bp.Source] = i
		} else {
			endPos[bp.Source] = i
		}
	}

	table := newRangeMax(counts)
	result := make([]int, n)
	for i := range result {
		result[i] = table.query(startPos[i], endPos[i])
	}
	return result
}

// rangeMax is a sparse table answering inclusive range-maximum queries.
// levels[k][i] holds max(values[i : i+2^k]).
type rangeMax struct {
	levels [][]int
}

func newRangeMax(values []int) *rangeMax {
	rm := &rangeMax{}
	if len(values) == 0 {
		return rm
	}
	rm.levels = append(rm.levels, append([]int(nil), values...))
	for width := 2; width <= len(values); width *= 2 {
		prev := rm.levels[len(rm.levels)-1]
		half := width / 2
		level := make([]int, len(values)-width+1)
		for i := range level {
			level[i] = max(prev[i], prev[i+half])
		}
		rm.levels = append(rm.levels, level)
	}
	return rm
}

// query returns max(values[lo..hi]). lo must not exceed hi.
func (rm *rangeMax) query(lo, hi int) int {
	k := bits.Len(uint(hi-lo+1)) - 1
	level := rm.levels[k]
	return max(level[lo], level[hi-(1<<k)+1])
}
