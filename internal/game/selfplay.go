package game

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/hashing"
	"github.com/lgbarn/amazons-go/internal/output"
	"github.com/lgbarn/amazons-go/internal/record"
	"github.com/lgbarn/amazons-go/internal/worker"
)

// ComputerName is the player name of computer players.
const ComputerName = "amazons-go"

// SelfPlayStats counts the outcome of a self-play run.
type SelfPlayStats struct {
	Played     int
	WhiteWins  int
	BlackWins  int
	Duplicates int
	Errors     int
}

// SelfPlay plays cfg.SelfPlay.Games computer games on cfg.SelfPlay.Workers
// goroutines. Game n opens with cfg.SelfPlay.RandomPlies random moves
// seeded with cfg.SelfPlay.Seed+n. Finished games are passed to emit in
// game order; duplicates, when suppressed, go to DuplicateFile instead.
//
// A failed game does not stop the run; the first game error is returned
// once all games are done. An error from emit stops the run.
func SelfPlay(ctx context.Context, cfg *config.Config, emit func(*record.Record) error) (SelfPlayStats, error) {
	var stats SelfPlayStats
	sp := cfg.SelfPlay

	logCfg := *cfg
	if cfg.LogFile != nil && sp.Workers > 1 {
		logCfg.LogFile = &lockedWriter{w: cfg.LogFile}
	}

	var detector *hashing.ThreadSafeDuplicateDetector
	if sp.SuppressDuplicates {
		detector = hashing.NewThreadSafeDuplicateDetector(true, 0)
	}

	items := make([]worker.WorkItem, sp.Games)
	for i := range items {
		items[i] = worker.WorkItem{Index: i, Seed: sp.Seed + int64(i)}
	}

	play := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		return playSelfGame(ctx, &logCfg, item, detector)
	}
	results := worker.Run(ctx, items, play, worker.WithWorkers(sp.Workers))

	var firstErr error
	for _, r := range results {
		switch {
		case r.Err != nil:
			stats.Errors++
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		case r.Duplicate:
			stats.Duplicates++
			if sp.DuplicateFile != nil {
				if err := output.WriteText(sp.DuplicateFile, r.Record, cfg.Output); err != nil {
					return stats, err
				}
			}
			continue
		}

		stats.Played++
		if winner, over := r.Board.Winner(); over {
			if winner == amazons.White {
				stats.WhiteWins++
			} else {
				stats.BlackWins++
			}
		}
		if err := emit(r.Record); err != nil {
			return stats, err
		}
	}

	if skipped := sp.Games - len(results); skipped > 0 && firstErr == nil {
		firstErr = ctx.Err()
	}

	if cfg.Verbosity > 0 && cfg.LogFile != nil {
		fmt.Fprintf(cfg.LogFile, "self-play: %d games, White %d, Black %d, %d duplicates, %d errors\n",
			stats.Played, stats.WhiteWins, stats.BlackWins, stats.Duplicates, stats.Errors)
	}
	return stats, firstErr
}

func playSelfGame(ctx context.Context, cfg *config.Config, item worker.WorkItem, detector *hashing.ThreadSafeDuplicateDetector) worker.ProcessResult {
	white := NewAIPlayer(ComputerName, NewSearcher(cfg))
	black := NewAIPlayer(ComputerName, NewSearcher(cfg))

	g, err := New(cfg, white, black,
		WithRandomOpening(cfg.SelfPlay.RandomPlies, item.Seed),
		WithRound(item.Index+1))
	if err != nil {
		return worker.ProcessResult{Index: item.Index, Err: err}
	}

	res, err := g.Play(ctx)
	if err != nil {
		return worker.ProcessResult{Index: item.Index, Record: res.Record, Err: err}
	}

	dup := detector != nil && detector.CheckAndAdd(res.Record, g.Board())
	if dup {
		g.logf(1, "%s: %v\n", g.shortID(), amzerrors.ErrDuplicateGame)
	}
	return worker.ProcessResult{
		Index:     item.Index,
		Record:    res.Record,
		Board:     g.Board(),
		Duplicate: dup,
	}
}

// lockedWriter serialises writes from concurrent games.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
