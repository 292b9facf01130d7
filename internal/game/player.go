// Package game runs Amazons games between human and computer players.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	"github.com/lgbarn/amazons-go/internal/engine"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
)

// Player chooses moves for one side.
//
// Move is given a copy of the current board with the player's side to move
// and returns a legal move for it. A player may instead return
// ErrUndoRequested to take back its previous move, or ErrGameAborted to
// end the game.
type Player interface {
	Name() string
	Move(ctx context.Context, b *amazons.Board) (amazons.Move, error)
}

// Evaluator is implemented by players that can report the value of the
// move they just chose, from White's point of view.
type Evaluator interface {
	Evaluation() (value int, ok bool)
}

// AIPlayer picks moves with an engine.Searcher.
type AIPlayer struct {
	name     string
	searcher *engine.Searcher

	value    int
	hasValue bool
}

// NewAIPlayer creates a computer player using s.
func NewAIPlayer(name string, s *engine.Searcher) *AIPlayer {
	return &AIPlayer{name: name, searcher: s}
}

// NewSearcher creates a searcher with the search settings of cfg, logging
// to cfg.LogFile.
func NewSearcher(cfg *config.Config) *engine.Searcher {
	return engine.New(
		engine.WithMaxDepth(cfg.Search.MaxDepth),
		engine.WithTimeLimit(cfg.Search.TimeLimit),
		engine.WithLogger(cfg.LogFile, cfg.Verbosity),
	)
}

// Name returns the player's name.
func (p *AIPlayer) Name() string {
	return p.name
}

// Move searches b. When the time limit runs out before any root move has
// been searched, the first legal move is played instead. Cancelling ctx
// itself is reported as an error.
func (p *AIPlayer) Move(ctx context.Context, b *amazons.Board) (amazons.Move, error) {
	p.hasValue = false

	m, err := p.searcher.SelectMove(ctx, b)
	switch {
	case err == nil:
		p.value, p.hasValue = p.searcher.LastValue(), true
		return m, nil
	case errors.Is(err, amzerrors.ErrSearchCancelled) && ctx.Err() == nil:
		if m, ok := b.LegalMoves(b.Turn()).Next(); ok {
			return m, nil
		}
	}
	return amazons.Move{}, fmt.Errorf("%s: %w", p.name, err)
}

// Evaluation returns the search value of the last move, when it came from
// a finished search.
func (p *AIPlayer) Evaluation() (int, bool) {
	return p.value, p.hasValue
}
