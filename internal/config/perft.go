package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/draughts-go/internal/errors"
)

// PerftConfig holds settings for parallel move-tree counting.
type PerftConfig struct {
	// Workers is the number of goroutines expanding root moves
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int

	// CacheEntries bounds the transposition table; 0 disables caching
	CacheEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:      runtime.NumCPU(),
		BufferSize:   16,
		CacheEntries: 1 << 20,
	}
}

// Validate checks that the perft configuration is usable.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.BufferSize < 1 {
		return fmt.Errorf("perft buffer size (%d) < 1: %w", p.BufferSize, errors.ErrInvalidConfig)
	}
	if p.CacheEntries < 0 {
		return fmt.Errorf("perft cache entries (%d) < 0: %w", p.CacheEntries, errors.ErrInvalidConfig)
	}
	return nil
}
