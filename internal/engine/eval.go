// Package engine chooses moves for an automated Amazons player using a
// depth-bounded minimax search with alpha-beta pruning.
package engine

import (
	"math"

	"github.com/lgbarn/amazons-go/internal/amazons"
)

const (
	// WinningValue is the magnitude of a won position: positive when White
	// has won, negative when Black has. No mobility score can reach it.
	WinningValue = math.MaxInt32 - 1

	// Infinity is larger than any position value.
	Infinity = math.MaxInt32
)

// StaticScore evaluates b without searching. Values are from White's point
// of view: a finished game scores ±WinningValue, anything else scores
// White's mobility advantage.
func StaticScore(b *amazons.Board) int {
	if winner, ok := b.Winner(); ok {
		if winner == amazons.White {
			return WinningValue
		}
		return -WinningValue
	}
	return Mobility(b, amazons.White)
}

// Mobility returns side's legal move count minus its opponent's. It is
// antisymmetric: Mobility(b, White) == -Mobility(b, Black).
func Mobility(b *amazons.Board, side amazons.Side) int {
	return b.CountMoves(side) - b.CountMoves(side.Opponent())
}

// SideToMoveScore returns StaticScore from the perspective of the side to
// move, i.e. the side to move's mobility minus its opponent's for a game in
// progress.
func SideToMoveScore(b *amazons.Board) int {
	if b.Turn() == amazons.White {
		return StaticScore(b)
	}
	return -StaticScore(b)
}
