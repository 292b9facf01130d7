// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/amazons-go/internal/config"
)

var (
	// Players
	whitePlayer = flag.String("white", "human", "Who plays White: human or ai")
	blackPlayer = flag.String("black", "ai", "Who plays Black: human or ai")
	startPos    = flag.String("position", "", "Start from this position instead of the opening")

	// Search
	searchDepth = flag.Int("depth", 0, "Fixed search depth (0 = choose from the move count)")
	timeLimit   = flag.Duration("time", 0, "Time limit per computer move, e.g. 5s (0 = none)")

	// Self-play
	selfPlayGames      = flag.Int("selfplay", 0, "Play N computer games against itself")
	workers            = flag.Int("workers", 1, "Number of self-play games played at once")
	randomPlies        = flag.Int("random", 2, "Random opening plies in self-play games")
	seed               = flag.Int64("seed", 1, "Seed for random openings; game n uses seed+n")
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games in self-play and replay")
	duplicateFile      = flag.String("d", "", "Write suppressed duplicate games to this file")

	// Replay
	replayFile = flag.String("replay", "", "Verify and rewrite the games in a record file (- for stdin)")

	// Replay filtering
	tagFile        = flag.String("t", "", "Tag and position criteria file for replay")
	playerFilter   = flag.String("p", "", "Replay only games with this player (either side)")
	resultFilter   = flag.String("Tr", "", "Replay only games with this result (1-0, 0-1, *)")
	positionFilter = flag.String("Tp", "", "Replay only games reaching this position")
	negateMatch    = flag.Bool("n", false, "Replay the games that DON'T match the criteria")

	// Output
	outputFile   = flag.String("o", "", "Write game records to this file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("json", false, "Write game records as JSON")
	lineLength   = flag.Int("w", 80, "Maximum line length of records")
	noBoard      = flag.Bool("noboard", false, "Don't show the board before human moves")
	evaluation   = flag.Bool("eval", false, "Add search values as comments to computer moves")
	noNumbers    = flag.Bool("nonumbers", false, "Don't write move numbers in records")

	// Logging
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 game summaries, 2 every move")
	quiet     = flag.Bool("quiet", false, "Same as -v 0")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	applySearchFlags(cfg)
	applySelfPlayFlags(cfg)
	applyOutputFlags(cfg)

	cfg.ReplayFile = *replayFile
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyPlayerFlags sets the player kinds and start position.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Players.White = white
	cfg.Players.Black = black
	cfg.StartPosition = *startPos
	return nil
}

// applySearchFlags configures the computer players.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.MaxDepth = *searchDepth
	cfg.Search.TimeLimit = *timeLimit
}

// applySelfPlayFlags configures self-play. Self-play games are always
// computer against computer.
func applySelfPlayFlags(cfg *config.Config) {
	cfg.SelfPlay.Games = *selfPlayGames
	cfg.SelfPlay.Workers = *workers
	cfg.SelfPlay.RandomPlies = *randomPlies
	cfg.SelfPlay.Seed = *seed
	cfg.SelfPlay.SuppressDuplicates = *suppressDuplicates || *duplicateFile != ""
	if cfg.SelfPlay.Games > 0 {
		cfg.Players.White = config.Computer
		cfg.Players.Black = config.Computer
	}
}

// applyOutputFlags configures record and board output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.OutputFilename = *outputFile
	cfg.Output.MaxLineLength = uint(max(*lineLength, 0))
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.AddEvaluation = *evaluation
	cfg.Output.KeepMoveNumbers = !*noNumbers
}
