package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/danieljhkim/overlap/internal/config"
	"github.com/danieljhkim/overlap/internal/engine"
	"github.com/danieljhkim/overlap/internal/fsops"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	fs := fsops.NewRealFS()
	settings, err := config.LoadSettings(fs, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return engine.New(fs, *paths, settings), nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatTime prints a breakpoint time without trailing zeros.
func formatTime(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
