package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/overlap/internal/fsops"
	"github.com/danieljhkim/overlap/internal/intervalio"
	"github.com/danieljhkim/overlap/internal/sweep"
)

// DefaultPrecision is the number of decimals used when printing widths.
const DefaultPrecision = 3

// Settings holds user preferences from config.yaml.
type Settings struct {
	// TieBreak is "end-first" or "start-first"
	TieBreak string `yaml:"tie_break"`

	// Format is the default input format: auto, csv, json or yaml
	Format string `yaml:"format"`

	// Precision is the number of decimals used for widths
	Precision int `yaml:"precision"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		TieBreak:  sweep.EndFirst.String(),
		Format:    string(intervalio.FormatAuto),
		Precision: DefaultPrecision,
	}
}

// LoadSettings reads paths.Config if present and applies environment
// overrides on top. A missing file yields the defaults.
func LoadSettings(fs fsops.FS, paths *Paths) (Settings, error) {
	s := DefaultSettings()

	exists, err := fs.Exists(paths.Config)
	if err != nil {
		return s, errors.Wrapf(err, "failed to check config file %s", paths.Config)
	}
	if exists {
		data, err := fs.ReadFile(paths.Config)
		if err != nil {
			return s, errors.Wrapf(err, "failed to read config file %s", paths.Config)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, errors.Wrapf(err, "failed to parse config file %s", paths.Config)
		}
	}

	if v := os.Getenv("OVERLAP_TIE_BREAK"); v != "" {
		s.TieBreak = v
	}
	if v := os.Getenv("OVERLAP_FORMAT"); v != "" {
		s.Format = v
	}
	if v := os.Getenv("OVERLAP_PRECISION"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return s, errors.Wrapf(err, "invalid OVERLAP_PRECISION %q", v)
		}
		s.Precision = p
	}

	return s, s.Validate()
}

// Validate checks that every setting names a known value.
func (s Settings) Validate() error {
	if _, err := sweep.ParseTieBreak(s.TieBreak); err != nil {
		return errors.Wrap(err, "tie_break")
	}
	if _, err := intervalio.ParseFormat(s.Format); err != nil {
		return errors.Wrap(err, "format")
	}
	if s.Precision < 0 || s.Precision > 12 {
		return errors.Newf("precision %d out of range [0, 12]", s.Precision)
	}
	return nil
}
