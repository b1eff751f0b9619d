package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/lgbarn/draughts-go/internal/errors"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to os.Stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.MaxLineLength != 0 {
		t.Errorf("MaxLineLength = %d, want 0", cfg.MaxLineLength)
	}
	if cfg.NewLine != "\n" {
		t.Errorf("NewLine = %q, want %q", cfg.NewLine, "\n")
	}
	if cfg.Unicode {
		t.Error("Unicode should be false by default")
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResults {
		t.Error("KeepResults should be true by default")
	}
}

func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.BufferSize != 16 {
		t.Errorf("BufferSize = %d, want 16", cfg.BufferSize)
	}
	if cfg.CacheEntries != 1<<20 {
		t.Errorf("CacheEntries = %d, want %d", cfg.CacheEntries, 1<<20)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"verbose without log", func(c *Config) { c.Verbosity = 2; c.LogFile = nil }, true},
		{"quiet without log", func(c *Config) { c.LogFile = nil }, false},
		{"empty newline", func(c *Config) { c.Output.NewLine = "" }, true},
		{"zero workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"zero buffer", func(c *Config) { c.Perft.BufferSize = 0 }, true},
		{"negative cache", func(c *Config) { c.Perft.CacheEntries = -1 }, true},
		{"cache disabled", func(c *Config) { c.Perft.CacheEntries = 0 }, false},
		{"missing perft", func(c *Config) { c.Perft = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_SetLogFile(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetLogFile(buf)

	if cfg.LogFile != buf {
		t.Error("SetLogFile did not set LogFile")
	}
}

func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithLogFile(buf).
		WithMaxLineLength(40).
		WithNewLine("\r\n").
		WithUnicode(true).
		KeepMoveNumbers(false).
		WithPerftWorkers(3).
		WithPerftCache(0).
		Build()

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.LogFile != buf {
		t.Error("LogFile not set")
	}
	if cfg.Output.MaxLineLength != 40 {
		t.Errorf("MaxLineLength = %d, want 40", cfg.Output.MaxLineLength)
	}
	if cfg.Output.NewLine != "\r\n" {
		t.Errorf("NewLine = %q, want %q", cfg.Output.NewLine, "\r\n")
	}
	if !cfg.Output.Unicode {
		t.Error("Unicode should be true")
	}
	if cfg.Output.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be false")
	}
	if cfg.Perft.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Perft.Workers)
	}
	if cfg.Perft.CacheEntries != 0 {
		t.Errorf("CacheEntries = %d, want 0", cfg.Perft.CacheEntries)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
