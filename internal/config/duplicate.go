package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chesscore/internal/errors"
)

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// ExactMatch also compares the move sequence, not just the final position
	ExactMatch bool

	// MaxCapacity bounds the in-memory table, 0 for unlimited
	MaxCapacity int

	// DatabaseDir holds a persistent index shared between runs
	DatabaseDir string

	// DuplicateFile receives duplicate games instead of dropping them
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		ExactMatch: true,
	}
}

// Validate checks the duplicate settings.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	if d.DatabaseDir != "" && !d.Suppress {
		return fmt.Errorf("a duplicate database needs duplicate suppression: %w", errors.ErrInvalidConfig)
	}
	return nil
}
