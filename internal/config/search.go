package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/amazons-go/internal/errors"
)

// MaxSearchDepth bounds SearchConfig.MaxDepth. Deeper searches of an early
// position would not finish in any useful time.
const MaxSearchDepth = 10

// SearchConfig holds settings for computer players.
type SearchConfig struct {
	// MaxDepth fixes the search depth; 0 selects it from the move count
	MaxDepth int

	// TimeLimit bounds each move; 0 means no limit
	TimeLimit time.Duration
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{}
}

// Validate checks the search settings.
func (c *SearchConfig) Validate() error {
	if c.MaxDepth < 0 || c.MaxDepth > MaxSearchDepth {
		return fmt.Errorf("depth %d outside 0..%d: %w", c.MaxDepth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("negative time limit %v: %w", c.TimeLimit, errors.ErrInvalidConfig)
	}
	return nil
}
