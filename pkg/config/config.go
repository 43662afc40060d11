// Package config defines core configuration types for rcview.
// These types are pure data structures with no dependency on how or where
// configuration files are discovered.
package config

import (
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/units"
)

// ColorMode controls when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for rcview.
type Config struct {
	// Severities is the default severity filter ("all" or a comma list
	// like "error,warning").
	Severities string `yaml:"severities"`

	// Units selects coordinate formatting: "mm", "in", or "mils".
	Units string `yaml:"units"`

	// ExcludedCodes lists rule codes whose violations load pre-excluded.
	ExcludedCodes []int `yaml:"excluded_codes"`

	// ShowExcluded keeps excluded violations visible (de-emphasized)
	// instead of hiding them.
	ShowExcluded bool `yaml:"show_excluded"`

	// CLI-level options (not persisted to config files).

	// Color controls output colorization.
	Color ColorMode `yaml:"-"`

	// Interactive opens the interactive tree browser.
	Interactive bool `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Severities:   "all",
		Units:        "mm",
		ShowExcluded: true,
		Color:        ColorAuto,
	}
}

// SeverityMask parses the configured severity filter.
func (c *Config) SeverityMask() (severity.Mask, error) {
	return severity.ParseMask(c.Severities)
}

// UnitOptions parses the configured units into formatting options.
func (c *Config) UnitOptions() (units.Options, error) {
	u, err := units.ParseUnit(c.Units)
	if err != nil {
		return units.Options{}, err
	}
	return units.Options{Unit: u}, nil
}

// CodeExcluded reports whether the given rule code is pre-excluded.
func (c *Config) CodeExcluded(code int) bool {
	for _, excluded := range c.ExcludedCodes {
		if excluded == code {
			return true
		}
	}
	return false
}
