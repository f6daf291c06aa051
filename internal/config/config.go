// Package config provides the YAML configuration file for OrarioDoc.
//
// The file holds display preferences only; schedule data lives in the
// store. A missing file is created with defaults on first load.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// Config is the top-level application configuration.
type Config struct {
	// Theme selects the display theme ("light" or "dark").
	Theme string `yaml:"theme" json:"theme"`

	// WeekStart controls which weekday is shown first in the grid.
	// Supported values: "monday" (default) and "sunday".
	WeekStart string `yaml:"week_start" json:"week_start"`

	// DayStart and DayEnd are the school hours in strict HH:MM form;
	// the weekly grid flags lessons falling outside them.
	DayStart string `yaml:"day_start" json:"day_start"`
	DayEnd   string `yaml:"day_end" json:"day_end"`

	// DatabasePath overrides the default database directory. Empty uses
	// the XDG default.
	DatabasePath string `yaml:"database_path,omitempty" json:"database_path,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Theme:     "light",
		WeekStart: "monday",
		DayStart:  "08:00",
		DayEnd:    "18:00",
	}
}

// DefaultPath returns the default config file path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, model.AppName, "config.yaml")
}

// Path resolves the config file location, honoring the ORARIODOC_CONFIG
// environment variable.
func Path() string {
	if p := os.Getenv("ORARIODOC_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config file at path, creating it with defaults when it
// does not exist yet. Unknown keys are ignored; missing keys keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if werr := Save(path, cfg); werr != nil {
				return nil, werr
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config file, creating its directory. The file is 0600
// like the rest of the per-user data.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0600)
}

// applyDefaults fills any field a hand-edited file left empty.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.WeekStart != "sunday" && c.WeekStart != "monday" {
		c.WeekStart = d.WeekStart
	}
	if c.DayStart == "" {
		c.DayStart = d.DayStart
	}
	if c.DayEnd == "" {
		c.DayEnd = d.DayEnd
	}
}

// WeekdayOrder returns the seven day indexes in display order for the
// configured week start.
func (c *Config) WeekdayOrder() [7]int {
	if c.WeekStart == "sunday" {
		return [7]int{0, 1, 2, 3, 4, 5, 6}
	}
	return [7]int{1, 2, 3, 4, 5, 6, 0}
}
