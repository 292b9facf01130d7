package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets the player kind for both sides.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithDepth fixes the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.MaxDepth = depth
	return b
}

// WithTimeLimit bounds the time spent on each computer move.
func (b *ConfigBuilder) WithTimeLimit(d time.Duration) *ConfigBuilder {
	b.cfg.Search.TimeLimit = d
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithShowBoard controls whether the board is printed before each move.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithEvaluation enables search value comments in records.
func (b *ConfigBuilder) WithEvaluation(enabled bool) *ConfigBuilder {
	b.cfg.Output.AddEvaluation = enabled
	return b
}

// WithSelfPlay plays games computer against computer on the given number
// of workers. Both players become computers.
func (b *ConfigBuilder) WithSelfPlay(games, workers int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.Workers = workers
	b.cfg.Players.White = Computer
	b.cfg.Players.Black = Computer
	return b
}

// WithRandomOpening sets the number of random opening plies and their seed.
func (b *ConfigBuilder) WithRandomOpening(plies int, seed int64) *ConfigBuilder {
	b.cfg.SelfPlay.RandomPlies = plies
	b.cfg.SelfPlay.Seed = seed
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.SelfPlay.SuppressDuplicates = enabled
	return b
}

// WithReplay replays a game record file.
func (b *ConfigBuilder) WithReplay(filename string) *ConfigBuilder {
	b.cfg.ReplayFile = filename
	return b
}

// WithStartPosition starts games from the given position text.
func (b *ConfigBuilder) WithStartPosition(pos string) *ConfigBuilder {
	b.cfg.StartPosition = pos
	return b
}

// WithInput sets the stream human moves are read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
