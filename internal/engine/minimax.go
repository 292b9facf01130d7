package engine

import (
	"github.com/lgbarn/amazons-go/internal/amazons"
)

// Minimax searches b to depth without pruning and returns the best move
// for the side to move and its value. It visits every node and exists as
// a reference for the pruned search; ok is false when b is finished or
// depth is zero. b is not modified.
func Minimax(b *amazons.Board, depth int) (best amazons.Move, value int, ok bool) {
	work := b.Copy()
	value, best, ok = minimax(work, depth)
	return best, value, ok
}

func minimax(b *amazons.Board, depth int) (int, amazons.Move, bool) {
	if depth == 0 || b.GameOver() {
		return StaticScore(b), amazons.Move{}, false
	}

	side := b.Turn()
	maximizing := side == amazons.White
	bestValue := Infinity
	if maximizing {
		bestValue = -Infinity
	}
	var bestMove amazons.Move

	it := b.LegalMoves(side)
	for m, more := it.Next(); more; m, more = it.Next() {
		b.MustMakeMove(m)
		v, _, _ := minimax(b, depth-1)
		b.Undo()
		if (maximizing && v > bestValue) || (!maximizing && v < bestValue) {
			bestValue = v
			bestMove = m
		}
	}
	return bestValue, bestMove, true
}
