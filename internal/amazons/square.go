package amazons

import (
	"strconv"
)

// Square identifies one of the 100 cells of the board by its linear
// index row*10+col. Squares are plain values; there is nothing to allocate.
type Square int

// NoSquare is returned for coordinates that fall off the board.
const NoSquare Square = -1

// Direction is one of the eight queen directions.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	NumDirections = 8

	// NoDirection is returned by DirectionTo for squares not on a common line.
	NoDirection Direction = -1
)

// Column and row deltas for each direction, indexed by Direction.
var (
	dirCol = [NumDirections]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirRow = [NumDirections]int{1, 1, 0, -1, -1, -1, 0, 1}
)

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation of the direction.
func (d Direction) String() string {
	if d >= 0 && d < NumDirections {
		return directionNames[d]
	}
	return "?"
}

// Delta returns the column and row increments of one step in d.
func (d Direction) Delta() (dcol, drow int) {
	return dirCol[d], dirRow[d]
}

// Sq returns the square at (col, row), or NoSquare when either is outside 0..9.
func Sq(col, row int) Square {
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + col)
}

// AllSquares returns every square in increasing index order.
func AllSquares() []Square {
	squares := make([]Square, NumSquares)
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Col returns the 0-based column (a=0).
func (s Square) Col() int {
	return int(s) % BoardSize
}

// Row returns the 0-based row (rank 1 = 0).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Index returns the linear index row*10+col.
func (s Square) Index() int {
	return int(s)
}

// QueenMove returns the square steps squares away from s in direction dir,
// or NoSquare if that is off the board.
func (s Square) QueenMove(dir Direction, steps int) Square {
	if !s.Valid() || dir < 0 || dir >= NumDirections {
		return NoSquare
	}
	dc, dr := dir.Delta()
	return Sq(s.Col()+dc*steps, s.Row()+dr*steps)
}

// IsQueenMove reports whether to lies on the same row, column or diagonal
// as s. A square is not a queen move away from itself.
func (s Square) IsQueenMove(to Square) bool {
	if !s.Valid() || !to.Valid() || s == to {
		return false
	}
	dc := abs(to.Col() - s.Col())
	dr := abs(to.Row() - s.Row())
	return dc == 0 || dr == 0 || dc == dr
}

// DirectionTo returns the direction of the queen move from s to to, or
// NoDirection when IsQueenMove(to) does not hold.
func (s Square) DirectionTo(to Square) Direction {
	if !s.IsQueenMove(to) {
		return NoDirection
	}
	dc := sign(to.Col() - s.Col())
	dr := sign(to.Row() - s.Row())
	for d := Direction(0); d < NumDirections; d++ {
		if c, r := d.Delta(); c == dc && r == dr {
			return d
		}
	}
	return NoDirection
}

// Distance returns the number of queen steps between s and to. It is only
// meaningful when s.IsQueenMove(to).
func (s Square) Distance(to Square) int {
	dc := abs(to.Col() - s.Col())
	dr := abs(to.Row() - s.Row())
	if dc > dr {
		return dc
	}
	return dr
}

// String returns the algebraic name of the square, e.g. "a1" or "j10".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune(ColBase+s.Col())) + strconv.Itoa(s.Row()+1)
}

// ParseSquare parses an algebraic square name. Rows run 1..10 with no
// leading zeros.
func ParseSquare(text string) (Square, bool) {
	sq, n := scanSquare(text)
	if n == 0 || n != len(text) {
		return NoSquare, false
	}
	return sq, true
}

// scanSquare reads a square name from the start of text and returns it with
// the number of bytes consumed, or (NoSquare, 0) if text does not start with one.
func scanSquare(text string) (Square, int) {
	if len(text) < 2 {
		return NoSquare, 0
	}
	c := text[0]
	if c < ColBase || c > LastCol {
		return NoSquare, 0
	}
	if text[1] < '1' || text[1] > '9' {
		return NoSquare, 0
	}
	row := int(text[1] - '0')
	n := 2
	if row == 1 && len(text) > 2 && text[2] == '0' {
		row = 10
		n = 3
	}
	return Sq(int(c-ColBase), row-1), n
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
