// Package sweep computes per-interval maximum overlap with a sweep line.
//
// Every interval contributes a Start and an End breakpoint. The breakpoints
// are sorted, swept once to produce a running count of open intervals, and
// each interval then reports the largest count observed between its own
// Start and End breakpoints.
//
// The result sizes calendar events: an event whose maximum overlap is k is
// drawn at width 1/k.
//
// Key pieces:
//   - BuildBreakpoints: intervals to sorted breakpoints
//   - StackCounts: running concurrency after each breakpoint
//   - ResolveMaxOverlap: range-maximum per interval
//   - Solve / Sweep: the three stages composed
package sweep
