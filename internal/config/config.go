// Package config provides configuration for amazons-go.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summaries, 2=running commentary

	Players  *PlayerConfig
	Search   *SearchConfig
	Output   *OutputConfig
	SelfPlay *SelfPlayConfig

	// ReplayFile names a game record to replay instead of playing.
	ReplayFile string

	// StartPosition is the position text games start from; empty means
	// the standard opening.
	StartPosition string

	// Streams
	Input      io.Reader // Human move input
	OutputFile io.Writer // Boards, records and results
	LogFile    io.Writer // Diagnostics
}

// NewConfig creates a new Config with default values: a human playing
// White against the computer, depth chosen by move count, text output.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Players:    NewPlayerConfig(),
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		SelfPlay:   NewSelfPlayConfig(),
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.SelfPlay.Validate(); err != nil {
		return err
	}
	if c.SelfPlay.Games > 0 && c.ReplayFile != "" {
		return fmt.Errorf("self-play and replay are exclusive: %w", errors.ErrInvalidConfig)
	}
	if c.StartPosition != "" {
		if _, err := amazons.ParsePosition(c.StartPosition); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}
