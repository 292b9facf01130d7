package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/amazons-go/internal/errors"
)

// SelfPlayConfig holds settings for batches of computer-only games.
type SelfPlayConfig struct {
	// Games is the number of games to play; 0 disables self-play
	Games int

	// Workers is the number of games played concurrently
	Workers int

	// RandomPlies opens each game with this many random moves so that
	// games differ from one another
	RandomPlies int

	// Seed for the random opening moves; game n uses Seed+n
	Seed int64

	// SuppressDuplicates drops games whose move sequence was already seen.
	// Replay honours it too.
	SuppressDuplicates bool

	// DuplicateFile receives suppressed games (nil discards them)
	DuplicateFile io.Writer
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Workers:     1,
		RandomPlies: 2,
		Seed:        1,
	}
}

// Validate checks the self-play settings.
func (c *SelfPlayConfig) Validate() error {
	if c.Games < 0 {
		return fmt.Errorf("game count %d: %w", c.Games, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.RandomPlies < 0 {
		return fmt.Errorf("random plies %d: %w", c.RandomPlies, errors.ErrInvalidConfig)
	}
	return nil
}
