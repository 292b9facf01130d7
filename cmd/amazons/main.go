// amazons plays the game of the Amazons against the computer, lets the
// computer play itself, and checks recorded games.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/game"
	"github.com/lgbarn/amazons-go/internal/hashing"
	"github.com/lgbarn/amazons-go/internal/matching"
	"github.com/lgbarn/amazons-go/internal/output"
	"github.com/lgbarn/amazons-go/internal/processing"
	"github.com/lgbarn/amazons-go/internal/record"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("amazons-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	filter, err := setupGameFilter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, cfg, filter, os.Stdout))
}

// run dispatches to replay, self-play or an interactive game and returns
// the exit status. Prompts and boards for human players go to console.
// filter selects the replayed games; nil keeps them all.
func run(ctx context.Context, cfg *config.Config, filter *matching.GameFilter, console io.Writer) int {
	switch {
	case cfg.ReplayFile != "":
		return runReplay(cfg, filter)
	case cfg.SelfPlay.Games > 0:
		return runSelfPlay(ctx, cfg)
	default:
		return runInteractive(ctx, cfg, console)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.SelfPlay.DuplicateFile = file
}

// setupGameFilter builds the replay filter from the filtering flags.
func setupGameFilter() (*matching.GameFilter, error) {
	filter := matching.NewGameFilter()

	if *tagFile != "" {
		file, err := os.Open(*tagFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, err
		}
		defer file.Close() //nolint:errcheck // read-only file
		if err := filter.LoadCriteria(file); err != nil {
			return nil, fmt.Errorf("criteria file %s: %w", *tagFile, err)
		}
	}

	if *playerFilter != "" {
		filter.AddPlayerFilter(*playerFilter)
	}
	if *resultFilter != "" {
		filter.AddResultFilter(*resultFilter)
	}
	if *positionFilter != "" {
		if err := filter.AddPositionFilter(*positionFilter); err != nil {
			return nil, fmt.Errorf("position filter: %w", err)
		}
	}
	filter.SetNegate(*negateMatch)
	return filter, nil
}

// newPlayer creates the player for one side.
func newPlayer(cfg *config.Config, side amazons.Side, in *bufio.Scanner, console io.Writer) game.Player {
	kind := cfg.Players.White
	if side == amazons.Black {
		kind = cfg.Players.Black
	}
	if kind == config.Human {
		return game.NewHumanPlayer("Human", in, console, cfg.Output.ShowBoard)
	}
	return game.NewAIPlayer(game.ComputerName, game.NewSearcher(cfg))
}

// runInteractive plays one game with at least one human player, then
// writes its record.
func runInteractive(ctx context.Context, cfg *config.Config, console io.Writer) int {
	in := bufio.NewScanner(cfg.Input)
	white := newPlayer(cfg, amazons.White, in, console)
	black := newPlayer(cfg, amazons.Black, in, console)

	g, err := game.New(cfg, white, black)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	status := 0
	res, err := g.Play(ctx)
	switch {
	case err == nil:
		if cfg.Output.ShowBoard {
			output.WriteBoard(console, g.Board())
		}
		fmt.Fprintf(console, "%s wins after %d moves.\n", res.Winner, g.Board().NumMoves())
	case errors.Is(err, amzerrors.ErrGameAborted):
		fmt.Fprintln(console, "Game abandoned.")
	default:
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		status = 1
	}

	if err := writeRecords(cfg, res.Record); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing record: %v\n", err)
		return 1
	}
	return status
}

// runSelfPlay plays the configured number of computer games.
func runSelfPlay(ctx context.Context, cfg *config.Config) int {
	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	stats, err := game.SelfPlay(ctx, cfg, w.WriteRecord)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if stats.Errors > 0 {
		return 1
	}
	return 0
}

// runReplay checks every game in the replay file and rewrites the games
// that replay cleanly and pass the filter. Errors are reported per game.
// With -eval every move gets a mobility comment. With -D games ending in an
// already seen position after the same moves are dropped.
func runReplay(cfg *config.Config, filter *matching.GameFilter) int {
	name := cfg.ReplayFile
	var in io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", name, err)
			return 1
		}
		defer file.Close() //nolint:errcheck // read-only file
		in = file
	} else {
		name = "stdin"
	}

	parser := record.NewParser(in, cfg)
	parser.SetFilename(name)
	recs, parseErr := parser.ParseAll()

	var detector *hashing.DuplicateDetector
	if cfg.SelfPlay.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(true, 0)
	}

	var good []*record.Record
	failures, skipped := 0, 0
	for i, rec := range recs {
		v := processing.ValidateRecord(rec)
		if !v.Valid {
			var gameErr *amzerrors.GameError
			if errors.As(v.Err, &gameErr) {
				gameErr.File = name
				gameErr.GameNum = i + 1
			}
			fmt.Fprintf(cfg.LogFile, "%v\n", v.Err)
			failures++
			continue
		}
		if filter != nil && filter.HasCriteria() && !filter.MatchRecord(rec) {
			skipped++
			continue
		}
		if detector != nil {
			final, err := record.Replay(rec)
			if err == nil && detector.CheckAndAdd(rec, final) {
				if cfg.SelfPlay.DuplicateFile != nil {
					output.WriteText(cfg.SelfPlay.DuplicateFile, rec, cfg.Output) //nolint:errcheck // best effort
				}
				continue
			}
		}
		if cfg.Verbosity > 1 {
			for _, w := range v.Warnings {
				fmt.Fprintf(cfg.LogFile, "%s: game %d: %s\n", name, i+1, w)
			}
		}

		if cfg.Output.AddEvaluation || cfg.Verbosity > 1 {
			analysis, err := processing.AnalyzeRecord(rec)
			if err != nil {
				fmt.Fprintf(cfg.LogFile, "%v\n", err)
				failures++
				continue
			}
			if cfg.Output.AddEvaluation {
				processing.AnnotateMobility(rec, analysis)
			}
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%s: game %d: %s\n", name, i+1, analysis.Summary())
				output.WriteBoard(cfg.LogFile, analysis.FinalBoard)
			}
		}
		good = append(good, rec)
	}

	if err := writeRecords(cfg, good...); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing records: %v\n", err)
		return 1
	}

	if parseErr != nil {
		fmt.Fprintf(cfg.LogFile, "%v\n", parseErr)
		failures++
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d game(s) replayed, %d error(s).\n", len(good), failures)
		if skipped > 0 {
			fmt.Fprintf(cfg.LogFile, "%d game(s) did not match the filter.\n", skipped)
		}
		if detector != nil && detector.DuplicateCount() > 0 {
			fmt.Fprintf(cfg.LogFile, "%d duplicate game(s) dropped.\n", detector.DuplicateCount())
		}
	}
	if failures > 0 {
		return 1
	}
	return 0
}

// writeRecords writes recs to the output file in the configured format.
func writeRecords(cfg *config.Config, recs ...*record.Record) error {
	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	for _, rec := range recs {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	return w.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: amazons [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play the game of the Amazons on a 10x10 board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)     play one game, by default you as White against the computer\n")
	fmt.Fprintf(os.Stderr, "  -selfplay N   the computer plays N games against itself\n")
	fmt.Fprintf(os.Stderr, "  -replay FILE  check the games in FILE and write the legal ones\n")
	fmt.Fprintf(os.Stderr, "                (-p, -Tr, -Tp, -t and -n select which games)\n")
	fmt.Fprintf(os.Stderr, "\nMoves are written from-to(spear), for example d1-d7(g7).\n")
}
