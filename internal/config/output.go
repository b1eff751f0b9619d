package config

import "github.com/lgbarn/draughts-go/internal/errors"

// OutputConfig holds settings related to game output.
type OutputConfig struct {
	// MaxLineLength wraps PDN move text; 0 disables wrapping
	MaxLineLength uint

	// NewLine terminates every output line
	NewLine string

	// Unicode renders ASCII boards with draughts glyphs
	Unicode bool

	// KeepMoveNumbers controls whether move numbers are written
	KeepMoveNumbers bool

	// KeepResults controls whether the Result tag is repeated after the moves
	KeepResults bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:   0,
		NewLine:         "\n",
		KeepMoveNumbers: true,
		KeepResults:     true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.NewLine == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "empty newline")
	}
	return nil
}
