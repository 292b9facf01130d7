package amazons

import (
	"strings"
)

// Initial amazon placement for White. Black starts on the point-reflected
// squares.
var whiteStart = [AmazonsPerSide]Square{Sq(3, 0), Sq(6, 0), Sq(0, 3), Sq(9, 3)}

// Board holds a position together with the moves that led to it.
// The zero value is not usable; call NewBoard.
type Board struct {
	// The squares, indexed by Square.
	squares [NumSquares]Piece

	// Who has the next move.
	turn Side

	// Number of moves applied since the position was set up.
	numMoves int

	// Applied moves, most recent last. Undo pops from here.
	history []Move

	// Memoised result of Outcome(); reset by every mutation.
	outcome Outcome
}

// NewBoard returns a board in the initial position with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// NewEmptyBoard returns a board with no pieces, White to move. It is the
// starting point for setting up arbitrary positions with Put.
func NewEmptyBoard() *Board {
	return &Board{turn: White}
}

// Init resets b to the initial position.
func (b *Board) Init() {
	*b = Board{turn: White}
	for _, sq := range whiteStart {
		b.squares[sq] = WhiteAmazon
		b.squares[reflect(sq)] = BlackAmazon
	}
}

// reflect returns the square mirrored through the centre of the board.
func reflect(sq Square) Square {
	return Sq(BoardSize-1-sq.Col(), BoardSize-1-sq.Row())
}

// Copy returns a deep copy of b. The history is duplicated, so undoing on
// the copy never affects b.
func (b *Board) Copy() *Board {
	c := &Board{}
	*c = *b
	if b.history != nil {
		c.history = make([]Move, len(b.history), cap(b.history))
		copy(c.history, b.history)
	}
	return c
}

// Get returns the contents of sq. Off-board squares read as Spear, so they
// block like any other obstacle.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Spear
	}
	return b.squares[sq]
}

// At returns the contents of the square at (col, row).
func (b *Board) At(col, row int) Piece {
	return b.Get(Sq(col, row))
}

// Put sets sq to p. It is meant for position setup and does not touch the
// turn, move count or history.
func (b *Board) Put(p Piece, sq Square) {
	if !sq.Valid() {
		return
	}
	b.squares[sq] = p
	b.invalidate()
}

// Turn returns the side to move.
func (b *Board) Turn() Side {
	return b.turn
}

// SetTurn sets the side to move. Like Put it is meant for position setup.
func (b *Board) SetTurn(side Side) {
	b.turn = side
	b.invalidate()
}

// NumMoves returns the number of moves made (and not undone).
func (b *Board) NumMoves() int {
	return b.numMoves
}

// History returns a copy of the moves made on this board, oldest first.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	copy(out, b.history)
	return out
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// Pieces returns the squares occupied by side's amazons in increasing
// index order.
func (b *Board) Pieces(side Side) []Square {
	want := side.Piece()
	out := make([]Square, 0, AmazonsPerSide)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.squares[sq] == want {
			out = append(out, sq)
		}
	}
	return out
}

// Count returns the number of squares holding p.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, q := range b.squares {
		if q == p {
			n++
		}
	}
	return n
}

// Equal reports whether b and o hold the same pieces with the same side to
// move and move count. History is not compared.
func (b *Board) Equal(o *Board) bool {
	return b.squares == o.squares && b.turn == o.turn && b.numMoves == o.numMoves
}

// String renders the board with row 10 at the top, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteString("  ")
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.At(col, row).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// invalidate forgets the memoised outcome.
func (b *Board) invalidate() {
	b.outcome = Outcome{}
}
