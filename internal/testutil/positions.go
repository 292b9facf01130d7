package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/amazons-go/internal/amazons"
)

const fullRow = "XXXXXXXXXX"

// Fixed positions shared by the engine, game and record tests.
var (
	// CornerPosition pockets White on a1 and Black on c1 in six free
	// squares. White has nine moves; with best play White wins in three
	// plies.
	CornerPosition = strings.Repeat(fullRow+"/", 8) + "2XXXXXXXX/W1B1XXXXXX w"

	// StuckPosition walls White in on a1 while Black on j10 still has j9.
	// With White to move the game is over and Black has won.
	StuckPosition = "XXXXXXXXXB/XXXXXXXXX1/" + strings.Repeat(fullRow+"/", 7) + "WXXXXXXXXX w"

	// EndgamePosition is a late middle game with three White amazons
	// buried on the tenth row. Each side has 50 moves.
	EndgamePosition = "WXWXWXBXBX/" + strings.Repeat(fullRow+"/", 6) + "3BXXXXXX/4XXXXXX/W3XXXXXX w"
)

// MustPosition parses a position string, failing the test on error.
func MustPosition(t testing.TB, text string) *amazons.Board {
	t.Helper()
	b, err := amazons.ParsePosition(text)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", text, err)
	}
	return b
}

// WithTurn returns position text with the side to move replaced.
func WithTurn(text string, side amazons.Side) string {
	fields := strings.Fields(text)
	turn := "w"
	if side == amazons.Black {
		turn = "b"
	}
	if len(fields) < 2 {
		return fields[0] + " " + turn
	}
	fields[1] = turn
	return strings.Join(fields, " ")
}

// MustSquare parses a square name such as "j10".
func MustSquare(t testing.TB, name string) amazons.Square {
	t.Helper()
	sq, ok := amazons.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// PlayMoves applies moves in order to b, failing the test on the first one
// that is rejected.
func PlayMoves(t testing.TB, b *amazons.Board, moves ...string) {
	t.Helper()
	for i, text := range moves {
		m, err := amazons.ParseMoveErr(text)
		if err != nil {
			t.Fatalf("move %d: %v", i+1, err)
		}
		if err := b.MakeMove(m); err != nil {
			t.Fatalf("move %d: %v", i+1, err)
		}
	}
}

// MoveStrings renders moves in their text form.
func MoveStrings(moves []amazons.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
