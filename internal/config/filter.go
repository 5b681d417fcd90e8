package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// FilterConfig holds settings for selecting which games are output.
type FilterConfig struct {
	// Move bounds, in full moves
	CheckMoveBounds bool
	LowerMoveBound  uint
	UpperMoveBound  uint

	// Match conditions on the final position
	MatchCheckmate bool
	MatchStalemate bool
	MatchDraw      bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values (false, 0) - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any final-position condition is set.
func (f *FilterConfig) Active() bool {
	return f.CheckMoveBounds || f.MatchCheckmate || f.MatchStalemate || f.MatchDraw
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckMoveBounds && f.LowerMoveBound > f.UpperMoveBound {
		return fmt.Errorf("lower move bound (%d) > upper move bound (%d): %w",
			f.LowerMoveBound, f.UpperMoveBound, errors.ErrInvalidConfig)
	}
	return nil
}
