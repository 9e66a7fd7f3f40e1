// Package engine provides the orchestration layer for overlap operations.
//
// The engine sits between CLI commands and the sweep solver. It resolves
// settings, loads interval batches from arguments, files or stdin, runs the
// solver and optionally writes a JSON report.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - Solve: load, validate, sweep, report
package engine

import (
	"github.com/danieljhkim/overlap/internal/config"
	"github.com/danieljhkim/overlap/internal/fsops"
	"github.com/danieljhkim/overlap/internal/sweep"
)

// DemoIntervals is the fixed sample shown by the demo command.
var DemoIntervals = []sweep.Interval{
	{Start: 1, End: 3},
	{Start: 4, End: 6},
	{Start: 5, End: 9},
	{Start: 10, End: 12},
}

// Engine orchestrates all overlap operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	paths    config.Paths
	settings config.Settings
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, paths config.Paths, settings config.Settings) *Engine {
	return &Engine{
		fs:       fs,
		paths:    paths,
		settings: settings,
	}
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() config.Settings {
	return e.settings
}
