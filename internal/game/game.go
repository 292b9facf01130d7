package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	"github.com/lgbarn/amazons-go/internal/engine"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/record"
)

// DefaultEvent is the Event tag of games played by this package.
const DefaultEvent = "amazons-go game"

// Result summarises a game.
type Result struct {
	ID       uuid.UUID
	Winner   amazons.Side
	Finished bool // False when the game was aborted or cancelled
	Plies    int  // Moves played in this game
	Record   *record.Record
	Duration time.Duration
}

// Game is a game in progress between two players.
type Game struct {
	ID uuid.UUID

	cfg     *config.Config
	board   *amazons.Board
	players [2]Player
	rec     *record.Record

	rng         *rand.Rand
	openingLeft int
	round       int
	started     time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from b instead of the standard opening.
func WithBoard(b *amazons.Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b.Copy()
		}
	}
}

// WithRandomOpening plays the first plies moves at random, chosen with
// the given seed, before handing over to the players.
func WithRandomOpening(plies int, seed int64) Option {
	return func(g *Game) {
		g.openingLeft = plies
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRound sets the Round tag of the record.
func WithRound(n int) Option {
	return func(g *Game) {
		g.round = n
	}
}

// WithID fixes the game id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.ID = id
	}
}

// New creates a game between white and black. The starting position is
// cfg.StartPosition when set, else the standard opening; WithBoard
// overrides both.
func New(cfg *config.Config, white, black Player, opts ...Option) (*Game, error) {
	g := &Game{
		ID:      uuid.New(),
		cfg:     cfg,
		players: [2]Player{white, black},
	}
	if cfg.StartPosition != "" {
		b, err := amazons.ParsePosition(cfg.StartPosition)
		if err != nil {
			return nil, amzerrors.Wrap(err, "start position")
		}
		g.board = b
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = amazons.NewBoard()
	}

	g.rec = g.newRecord()
	return g, nil
}

func (g *Game) newRecord() *record.Record {
	rec := record.New()
	rec.SetTag(record.EventTag, DefaultEvent)
	rec.SetTag(record.DateTag, time.Now().Format("2006.01.02"))
	if g.round > 0 {
		rec.SetTag(record.RoundTag, strconv.Itoa(g.round))
	}
	rec.SetTag(record.WhiteTag, g.players[amazons.White].Name())
	rec.SetTag(record.BlackTag, g.players[amazons.Black].Name())
	rec.SetTag(record.ResultTag, record.Unfinished)
	rec.SetTag(record.GameIDTag, g.ID.String())
	if !g.board.Equal(amazons.NewBoard()) {
		rec.SetTag(record.PositionTag, amazons.FormatPosition(g.board))
	}
	if g.cfg.Search.TimeLimit > 0 {
		rec.SetTag(record.TimeLimitTag, g.cfg.Search.TimeLimit.String())
	}
	return rec
}

// Board returns the current position. The caller must not modify it.
func (g *Game) Board() *amazons.Board {
	return g.board
}

// Record returns the record of the game so far.
func (g *Game) Record() *record.Record {
	return g.rec
}

// Player returns the player for side.
func (g *Game) Player(side amazons.Side) Player {
	return g.players[side]
}

// Step plays one ply. It reports whether the game is over afterwards.
// A player's undo request takes back up to two plies and counts as a step.
func (g *Game) Step(ctx context.Context) (bool, error) {
	if g.started.IsZero() {
		g.started = time.Now()
	}
	if g.board.GameOver() {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	side := g.board.Turn()
	var (
		m        amazons.Move
		comments []string
	)

	if g.openingLeft > 0 {
		moves := g.board.AllLegalMoves(side)
		m = moves[g.rng.Intn(len(moves))]
		comments = append(comments, "random")
		g.openingLeft--
	} else {
		p := g.players[side]
		var err error
		m, err = p.Move(ctx, g.board.Copy())
		if errors.Is(err, amzerrors.ErrUndoRequested) {
			g.logf(2, "%s: %s takes back %d plies\n", g.shortID(), side, g.Undo(2))
			return false, nil
		}
		if err != nil {
			return false, g.wrap(err, "")
		}
		if ev, ok := p.(Evaluator); ok && g.cfg.Output.AddEvaluation {
			if v, ok := ev.Evaluation(); ok {
				comments = append(comments, formatValue(v))
			}
		}
	}

	if err := g.board.MakeMove(m); err != nil {
		return false, g.wrap(err, m.String())
	}
	g.rec.AppendMove(m, comments...)
	g.logf(2, "%s: %d. %s %s\n", g.shortID(), g.board.NumMoves(), side, m)

	if winner, over := g.board.Winner(); over {
		g.rec.SetTag(record.ResultTag, record.ResultFor(winner))
		g.rec.SetTag(record.PlyCountTag, strconv.Itoa(g.rec.PlyCount()))
		return true, nil
	}
	return false, nil
}

// Undo takes back up to n plies played in this game and returns how many
// were taken back. Random opening plies are not replayed.
func (g *Game) Undo(n int) int {
	undone := 0
	for undone < n && len(g.rec.Moves) > 0 {
		g.board.Undo()
		g.rec.Moves = g.rec.Moves[:len(g.rec.Moves)-1]
		undone++
	}
	return undone
}

// Play runs the game to the end. If a player aborts or ctx ends the
// partial result is returned along with the error.
func (g *Game) Play(ctx context.Context) (Result, error) {
	for {
		done, err := g.Step(ctx)
		if err != nil {
			res := g.result()
			g.logf(1, "%s: stopped after %d plies: %v\n", g.shortID(), res.Plies, err)
			return res, err
		}
		if done {
			break
		}
	}

	res := g.result()
	g.logf(1, "%s: %s wins after %d plies (%v)\n", g.shortID(), res.Winner, res.Plies, res.Duration.Round(time.Millisecond))
	return res, nil
}

func (g *Game) result() Result {
	res := Result{
		ID:     g.ID,
		Plies:  len(g.rec.Moves),
		Record: g.rec,
	}
	if !g.started.IsZero() {
		res.Duration = time.Since(g.started)
	}
	res.Winner, res.Finished = g.board.Winner()
	return res
}

func (g *Game) wrap(err error, moveText string) error {
	return &amzerrors.GameError{
		Err:      err,
		GameID:   g.ID.String(),
		GameNum:  g.round,
		PlyNum:   g.board.NumMoves() + 1,
		MoveText: moveText,
	}
}

func (g *Game) shortID() string {
	return g.ID.String()[:8]
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.LogFile == nil || g.cfg.Verbosity < level {
		return
	}
	fmt.Fprintf(g.cfg.LogFile, format, args...)
}

// formatValue renders a search value for a record comment.
func formatValue(v int) string {
	switch {
	case v >= engine.WinningValue:
		return "White wins"
	case v <= -engine.WinningValue:
		return "Black wins"
	}
	return fmt.Sprintf("%+d", v)
}
