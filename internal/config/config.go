// Package config loads converter settings from an optional JSON file
// and CLI flag overrides.
package config

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// Config holds all configurable converter settings.
type Config struct {
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	Workers   int    `json:"workers"`
	Recursive bool   `json:"recursive"`
	Manifest  bool   `json:"manifest"`
	Pure      bool   `json:"pure"`
	Verbose   bool   `json:"verbose"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Workers   int
	Recursive bool
	Manifest  bool
	Pure      bool
	Verbose   bool
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults. Flags take priority when non-zero.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Recursive {
		c.Recursive = true
	}
	if flags.Manifest {
		c.Manifest = true
	}
	if flags.Pure {
		c.Pure = true
	}
	if flags.Verbose {
		c.Verbose = true
	}

	if c.Format == "" {
		c.Format = "png"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
