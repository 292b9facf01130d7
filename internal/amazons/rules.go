package amazons

import (
	"github.com/lgbarn/amazons-go/internal/errors"
)

// IsUnblockedMove reports whether from-to is a queen move whose path is
// clear: every square strictly between them, and to itself, must be empty
// or equal to asEmpty. from is never considered blocking. Pass NoSquare as
// asEmpty when no square should be ignored.
func (b *Board) IsUnblockedMove(from, to, asEmpty Square) bool {
	if !from.IsQueenMove(to) {
		return false
	}
	dir := from.DirectionTo(to)
	steps := from.Distance(to)
	for i := 1; i <= steps; i++ {
		if !b.isOpen(from.QueenMove(dir, i), asEmpty) {
			return false
		}
	}
	return true
}

// isOpen reports whether sq can be passed through or landed on.
func (b *Board) isOpen(sq, asEmpty Square) bool {
	return sq.Valid() && (b.squares[sq] == Empty || sq == asEmpty)
}

// IsLegalStart reports whether from holds an amazon of the side to move.
func (b *Board) IsLegalStart(from Square) bool {
	return from.Valid() && b.squares[from] == b.turn.Piece()
}

// IsLegalPath reports whether from-to is a valid first part of a move,
// ignoring the spear throw.
func (b *Board) IsLegalPath(from, to Square) bool {
	return b.IsLegalStart(from) && to.Valid() && b.squares[to] == Empty &&
		b.IsUnblockedMove(from, to, NoSquare)
}

// IsLegalThrow reports whether from-to(spear) is legal in the current
// position. The vacated from square counts as empty for the throw, so a
// spear may land back on it.
func (b *Board) IsLegalThrow(from, to, spear Square) bool {
	return b.IsLegalPath(from, to) && b.IsUnblockedMove(to, spear, from)
}

// IsLegal reports whether m is legal in the current position.
func (b *Board) IsLegal(m Move) bool {
	return b.IsLegalThrow(m.From, m.To, m.Spear)
}

// MakeMove applies m. An illegal move leaves the board untouched and
// returns a *errors.MoveError wrapping errors.ErrIllegalMove.
func (b *Board) MakeMove(m Move) error {
	if !b.IsLegal(m) {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			Ply:      b.numMoves,
			Side:     b.turn.String(),
			MoveText: m.String(),
		}
	}
	b.apply(m)
	return nil
}

// MustMakeMove applies m, panicking if it is illegal. Use it only for moves
// that came out of this board's own enumerators.
func (b *Board) MustMakeMove(m Move) {
	if err := b.MakeMove(m); err != nil {
		panic(err)
	}
}

// apply performs m without checking it.
func (b *Board) apply(m Move) {
	b.squares[m.To] = b.squares[m.From]
	b.squares[m.From] = Empty
	b.squares[m.Spear] = Spear
	b.turn = b.turn.Opponent()
	b.numMoves++
	b.history = append(b.history, m)
	b.invalidate()
}

// Undo takes back the most recent move. It has no effect when no moves
// have been made on this board.
func (b *Board) Undo() {
	if len(b.history) == 0 {
		return
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.squares[m.Spear] = Empty
	b.squares[m.From] = b.squares[m.To]
	b.squares[m.To] = Empty
	b.turn = b.turn.Opponent()
	b.numMoves--
	b.invalidate()
}
