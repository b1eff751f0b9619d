// Package config provides configuration for the draughts engine.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/draughts-go/internal/errors"
)

// Config holds engine configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=rejected moves and loads

	// LogFile receives diagnostics when Verbosity > 0.
	LogFile io.Writer

	Output *OutputConfig
	Perft  *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 0,
		LogFile:   os.Stderr,
		Output:    NewOutputConfig(),
		Perft:     NewPerftConfig(),
	}
}

// SetLogFile sets the diagnostics stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if c.Verbosity > 0 && c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "verbosity set without a log file")
	}
	if c.Output == nil || c.Perft == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing sub-configuration")
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
