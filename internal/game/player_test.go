package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	"github.com/lgbarn/amazons-go/internal/engine"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/testutil"
)

func TestAIPlayer_Move(t *testing.T) {
	b := testutil.MustPosition(t, testutil.CornerPosition)
	p := NewAIPlayer("engine", engine.New(engine.WithMaxDepth(3)))

	m, err := p.Move(context.Background(), b)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, m.String(), "a1-b2(b1)")

	v, ok := p.Evaluation()
	testutil.AssertTrue(t, ok, "evaluation should be available")
	testutil.AssertEqual(t, v, engine.WinningValue)
	testutil.AssertEqual(t, p.Name(), "engine")
}

// The time limit runs out long before the first root move of a depth 3
// search of the opening is done, so the first legal move is played.
func TestAIPlayer_FallbackOnTimeLimit(t *testing.T) {
	b := amazons.NewBoard()
	s := engine.New(engine.WithMaxDepth(3), engine.WithTimeLimit(time.Millisecond))
	p := NewAIPlayer("engine", s)

	m, err := p.Move(context.Background(), b)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, m, b.AllLegalMoves(amazons.White)[0])

	_, ok := p.Evaluation()
	testutil.AssertFalse(t, ok, "no evaluation after a fallback move")
}

func TestAIPlayer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewAIPlayer("engine", engine.New(engine.WithMaxDepth(2)))
	_, err := p.Move(ctx, amazons.NewBoard())
	testutil.AssertErrorIs(t, err, amzerrors.ErrSearchCancelled)
}

func TestAIPlayer_GameOver(t *testing.T) {
	b := testutil.MustPosition(t, testutil.StuckPosition)
	p := NewAIPlayer("engine", engine.New())

	_, err := p.Move(context.Background(), b)
	if !errors.Is(err, amzerrors.ErrNoLegalMoves) {
		t.Errorf("Move() error = %v, want ErrNoLegalMoves", err)
	}
}

func TestNewSearcher(t *testing.T) {
	cfg := config.NewConfigBuilder().WithDepth(4).Build()
	s := NewSearcher(cfg)
	testutil.AssertEqual(t, s.DepthFor(0), 4)
	testutil.AssertEqual(t, s.DepthFor(90), 4)

	s = NewSearcher(config.NewConfig())
	testutil.AssertEqual(t, s.DepthFor(0), engine.MaxDepth(0))
	testutil.AssertEqual(t, s.DepthFor(90), engine.MaxDepth(90))
}
