// Package config manages overlap configuration and filesystem paths.
//
// The default root is ~/.overlap/ containing reports/ and config.yaml. The
// root can be moved with OVERLAP_ROOT, and individual settings can be
// overridden with OVERLAP_TIE_BREAK and OVERLAP_FORMAT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by overlap.
type Paths struct {
	// Root is the base directory for all overlap data (default: ~/.overlap)
	Root string

	// Reports is the directory bare report names are written to
	Reports string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for overlap.
// Paths can be overridden with environment variables:
// - OVERLAP_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("OVERLAP_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".overlap")
	}

	return &Paths{
		Root:    root,
		Reports: filepath.Join(root, "reports"),
		Config:  filepath.Join(root, "config.yaml"),
	}, nil
}

// ReportPath resolves where a report should be written. A bare file name is
// placed under Reports; anything with a directory component is used as is.
func (p *Paths) ReportPath(name string) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	return filepath.Join(p.Reports, name)
}
