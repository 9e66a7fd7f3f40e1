package engine

import (
	"io"

	"github.com/danieljhkim/overlap/internal/sweep"
)

// SolveRequest represents a request to compute maximum overlaps.
// Exactly one of Intervals, Pairs or File supplies the batch.
type SolveRequest struct {
	// Intervals is a batch given directly
	Intervals []sweep.Interval

	// Pairs are "start:end" arguments
	Pairs []string

	// File is the input path, or "-" for Stdin
	File string

	// Stdin is read when File is "-"
	Stdin io.Reader

	// Format overrides the configured input format
	Format string

	// TieBreak overrides the configured tie-break policy
	TieBreak string

	// Report is an optional report destination (see config.Paths.ReportPath)
	Report string
}
