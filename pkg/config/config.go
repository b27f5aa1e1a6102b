// Package config loads the optional otsch.toml configuration file. Every
// field has a default; a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds user-tunable policy. The layout and routing constants
// themselves are fixed; only boundary behavior is configurable.
type Config struct {
	// PinPolicy is "lenient" (default) or "strict". Strict logs a warning
	// for every net connection whose pin identifier matches nothing;
	// either way the fallback point is used and routing proceeds.
	PinPolicy string `toml:"pin_policy"`

	// ExportScale is the pixel-to-millimeter factor for KiCad export.
	ExportScale float64 `toml:"export_scale"`

	// Theme selects the viewer color scheme: "light" or "dark".
	Theme string `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PinPolicy:   "lenient",
		ExportScale: 0.1,
		Theme:       "light",
	}
}

// Strict reports whether the strict pin policy is selected.
func (c Config) Strict() bool {
	return c.PinPolicy == "strict"
}

// Load reads a TOML config file, applying defaults for absent fields. A
// missing file returns the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if c.PinPolicy != "lenient" && c.PinPolicy != "strict" {
		return c, fmt.Errorf("config: invalid pin_policy %q", c.PinPolicy)
	}
	return c, nil
}
