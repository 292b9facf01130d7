package engine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/lgbarn/amazons-go/internal/amazons"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/testutil"
)

func TestSearch_KnownPositions(t *testing.T) {
	endgameBlack := testutil.WithTurn(testutil.EndgamePosition, amazons.Black)
	stuckBlack := testutil.WithTurn(testutil.StuckPosition, amazons.Black)

	tests := []struct {
		name      string
		pos       string
		depth     int
		wantMove  string
		wantValue int
	}{
		{"endgame white d1", testutil.EndgamePosition, 1, "a1-b2(c3)", 27},
		{"endgame white d2", testutil.EndgamePosition, 2, "a1-b2(d2)", 7},
		{"endgame white d3", testutil.EndgamePosition, 3, "a1-c3(c2)", 20},
		{"endgame black d1", endgameBlack, 1, "d3-c2(b1)", -27},
		{"endgame black d2", endgameBlack, 2, "d3-c2(a2)", -7},
		{"endgame black d3", endgameBlack, 3, "d3-b1(b2)", -20},
		{"corner d1", testutil.CornerPosition, 1, "a1-b2(b1)", 3},
		{"corner d2", testutil.CornerPosition, 2, "a1-b2(b1)", 4},
		{"corner d3 forced win", testutil.CornerPosition, 3, "a1-b2(b1)", WinningValue},
		{"only move d1", stuckBlack, 1, "j10-j9(j10)", -WinningValue},
		{"only move d2", stuckBlack, 2, "j10-j9(j10)", -WinningValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustPosition(t, tt.pos)
			res, err := New().Search(context.Background(), b, tt.depth)
			testutil.RequireNoError(t, err)
			testutil.AssertEqual(t, res.Move.String(), tt.wantMove, "move")
			testutil.AssertEqual(t, res.Value, tt.wantValue, "value")
			testutil.AssertTrue(t, res.Stats.Complete, "complete")
		})
	}
}

// Pruning must never change the chosen move or its value.
func TestSearch_MatchesMinimax(t *testing.T) {
	tests := []struct {
		name     string
		pos      string
		maxDepth int
	}{
		{"corner", testutil.CornerPosition, 4},
		{"endgame white", testutil.EndgamePosition, 3},
		{"endgame black", testutil.WithTurn(testutil.EndgamePosition, amazons.Black), 2},
	}

	for _, tt := range tests {
		for depth := 1; depth <= tt.maxDepth; depth++ {
			if testing.Short() && depth > 2 {
				continue
			}
			b := testutil.MustPosition(t, tt.pos)
			res, err := New().Search(context.Background(), b, depth)
			testutil.RequireNoError(t, err)

			move, value, ok := Minimax(b, depth)
			testutil.AssertTrue(t, ok, "%s depth %d: minimax ok", tt.name, depth)
			testutil.AssertEqual(t, res.Move, move, "%s depth %d: move", tt.name, depth)
			testutil.AssertEqual(t, res.Value, value, "%s depth %d: value", tt.name, depth)
			testutil.AssertEqual(t, AlphaBeta(b, depth, -Infinity, Infinity), value,
				"%s depth %d: AlphaBeta", tt.name, depth)
		}
	}
}

// Among equally valued moves the first one enumerated is kept. In the
// corner both a1-b2(b1) and a1-b1(b2) leave White three moves ahead.
func TestSearch_FirstTiedMoveWins(t *testing.T) {
	b := testutil.MustPosition(t, testutil.CornerPosition)

	scores := map[string]int{}
	for _, m := range b.AllLegalMoves(amazons.White) {
		testutil.PlayMoves(t, b, m.String())
		scores[m.String()] = StaticScore(b)
		b.Undo()
	}
	testutil.AssertEqual(t, scores["a1-b2(b1)"], 3)
	testutil.AssertEqual(t, scores["a1-b1(b2)"], 3)

	res, err := New().Search(context.Background(), b, 1)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, res.Move.String(), "a1-b2(b1)")
}

func TestSearch_Stats(t *testing.T) {
	tests := []struct {
		name  string
		pos   string
		depth int
		want  Stats
	}{
		{"endgame d1", testutil.EndgamePosition, 1, Stats{Depth: 1, Nodes: 51, Leaves: 50, RootMoves: 50, Complete: true}},
		{"endgame d2", testutil.EndgamePosition, 2, Stats{Depth: 2, Nodes: 441, Leaves: 390, Cutoffs: 42, RootMoves: 50, Complete: true}},
		{"corner d3", testutil.CornerPosition, 3, Stats{Depth: 3, Nodes: 75, Leaves: 48, Cutoffs: 14, RootMoves: 9, Complete: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustPosition(t, tt.pos)
			s := New()
			_, err := s.Search(context.Background(), b, tt.depth)
			testutil.RequireNoError(t, err)

			got := s.Stats()
			got.Elapsed = 0
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestSelectMove_LeavesBoardUntouched(t *testing.T) {
	b := amazons.NewBoard()
	testutil.PlayMoves(t, b, "d1-d7(g7)", "g10-g8(g9)")
	before := amazons.FormatPosition(b)
	history := testutil.MoveStrings(b.History())

	s := New(WithMaxDepth(1))
	m, err := s.SelectMove(context.Background(), b)
	testutil.RequireNoError(t, err)
	testutil.AssertTrue(t, b.IsLegal(m), "selected move %s must be legal", m)

	testutil.AssertEqual(t, amazons.FormatPosition(b), before)
	testutil.AssertEqual(t, testutil.MoveStrings(b.History()), history)
	testutil.AssertEqual(t, b.Turn(), amazons.White)

	last, ok := s.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last, m)
}

func TestSelectMove_GameOver(t *testing.T) {
	b := testutil.MustPosition(t, testutil.StuckPosition)
	s := New()

	_, err := s.SelectMove(context.Background(), b)
	testutil.AssertErrorIs(t, err, amzerrors.ErrNoLegalMoves)

	_, ok := s.LastMove()
	testutil.AssertFalse(t, ok, "no last move after a failed search")
}

func TestSelectMove_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithMaxDepth(1)).SelectMove(ctx, amazons.NewBoard())
	testutil.AssertErrorIs(t, err, amzerrors.ErrSearchCancelled)
}

func TestSelectMove_TimeLimit(t *testing.T) {
	// A depth 3 search of the opening takes far longer than a millisecond
	// and no root move can finish in time.
	s := New(WithMaxDepth(3), WithTimeLimit(time.Millisecond))

	_, err := s.SelectMove(context.Background(), amazons.NewBoard())
	testutil.AssertErrorIs(t, err, amzerrors.ErrSearchCancelled)
	testutil.AssertFalse(t, s.Stats().Complete)
}

// stopAfter reports cancellation once Err has been consulted more than n
// times.
type stopAfter struct {
	context.Context
	n     int
	calls int
}

func (c *stopAfter) Err() error {
	c.calls++
	if c.calls > c.n {
		return context.Canceled
	}
	return nil
}

// When the deadline hits mid-root the best fully searched move is kept.
func TestSearch_PartialResult(t *testing.T) {
	b := testutil.MustPosition(t, testutil.CornerPosition)
	ctx := &stopAfter{Context: context.Background(), n: 4}

	s := New()
	res, err := s.Search(ctx, b, 1)
	testutil.RequireNoError(t, err)

	// The first four corner moves score -5, 1, -3 and 3.
	testutil.AssertEqual(t, res.Move.String(), "a1-b2(b1)")
	testutil.AssertEqual(t, res.Value, 3)
	testutil.AssertEqual(t, res.Stats.RootMoves, 4)
	testutil.AssertFalse(t, res.Stats.Complete)
}

func TestSearch_Logging(t *testing.T) {
	var buf bytes.Buffer
	b := testutil.MustPosition(t, testutil.CornerPosition)

	_, err := New(WithLogger(&buf, 2)).Search(context.Background(), b, 2)
	testutil.RequireNoError(t, err)
	testutil.AssertContains(t, buf.String(), "search: a1-b2(b1) value 4 depth 2")

	buf.Reset()
	_, err = New(WithLogger(&buf, 1)).Search(context.Background(), b, 2)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, buf.String(), "")
}

func TestSearch_Reusable(t *testing.T) {
	s := New()
	corner := testutil.MustPosition(t, testutil.CornerPosition)
	endgame := testutil.MustPosition(t, testutil.EndgamePosition)

	for i := 0; i < 2; i++ {
		res, err := s.Search(context.Background(), corner, 2)
		testutil.RequireNoError(t, err)
		testutil.AssertEqual(t, res.Value, 4)

		res, err = s.Search(context.Background(), endgame, 1)
		testutil.RequireNoError(t, err)
		testutil.AssertEqual(t, res.Value, 27)
		testutil.AssertEqual(t, s.LastValue(), 27)
	}
}
