package sweep

// StackCounts sweeps sorted breakpoints and returns, for each position, the
// number of intervals open after that breakpoint is processed.
func StackCounts(bps []Breakpoint) []int {
	counts := make([]int, len(bps))
	open := 0
	for i, bp := range bps {
		if bp.Cap == Start {
			open++
		} else {
			open--
		}
		counts[i] = open
	}
	return counts
}
