package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/amazons-go/internal/amazons"
)

func TestAssertHelpers_Pass(t *testing.T) {
	AssertEqual(t, []int{1, 2}, []int{1, 2})
	AssertNoError(t, nil)
	RequireNoError(t, nil)
	AssertContains(t, "d1-d7(g7)", "d7")
	AssertNotContains(t, "d1-d7(g7)", "x")
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertNil(t, nil)
	AssertNil(t, (*amazons.Board)(nil))
	AssertNotNil(t, amazons.NewBoard())

	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"none", nil, ""},
		{"plain", []interface{}{"setup"}, "setup"},
		{"format", []interface{}{"move %d", 3}, "move 3"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	tests := []struct {
		name      string
		position  string
		wantWhite int
		wantBlack int
		gameOver  bool
	}{
		{"corner", CornerPosition, 9, 9, false},
		{"stuck", StuckPosition, 0, 1, true},
		{"endgame", EndgamePosition, 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustPosition(t, tt.position)
			AssertEqual(t, b.CountMoves(amazons.White), tt.wantWhite, "white moves")
			AssertEqual(t, b.CountMoves(amazons.Black), tt.wantBlack, "black moves")
			AssertEqual(t, b.GameOver(), tt.gameOver, "game over")
		})
	}
}

func TestWithTurn(t *testing.T) {
	b := MustPosition(t, WithTurn(StuckPosition, amazons.Black))
	AssertEqual(t, b.Turn(), amazons.Black)
	AssertFalse(t, b.GameOver())

	AssertEqual(t, WithTurn("10/10 w 3", amazons.Black), "10/10 b 3")
}

func TestPlayMoves(t *testing.T) {
	b := amazons.NewBoard()
	PlayMoves(t, b, "d1-d7(g7)", "g10-g8(g9)")
	AssertEqual(t, b.NumMoves(), 2)
	AssertEqual(t, MoveStrings(b.History()), []string{"d1-d7(g7)", "g10-g8(g9)"})
	AssertEqual(t, b.Get(MustSquare(t, "g9")), amazons.Spear)
}
