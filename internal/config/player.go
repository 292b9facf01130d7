package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/amazons-go/internal/errors"
)

// PlayerKind says who chooses the moves for one side.
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

// String returns the command-line spelling of k.
func (k PlayerKind) String() string {
	if k == Human {
		return "human"
	}
	return "ai"
}

// ParsePlayerKind accepts "human" or "ai" (also "computer"), ignoring case.
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(s) {
	case "human":
		return Human, nil
	case "ai", "computer":
		return Computer, nil
	}
	return Human, fmt.Errorf("player %q: %w", s, errors.ErrInvalidConfig)
}

// PlayerConfig holds the player kind for each side.
type PlayerConfig struct {
	White PlayerKind
	Black PlayerKind
}

// NewPlayerConfig creates a PlayerConfig with a human as White.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{White: Human, Black: Computer}
}

// NeedsInput reports whether either side reads moves from the input stream.
func (c *PlayerConfig) NeedsInput() bool {
	return c.White == Human || c.Black == Human
}
