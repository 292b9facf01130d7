// Package amazons provides the board, rules and move generation for the
// game of the Amazons.
package amazons

// Side identifies one of the two players.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Piece returns the marker painted on the board for the side's amazons.
func (s Side) Piece() Piece {
	if s == White {
		return WhiteAmazon
	}
	return BlackAmazon
}

// Piece is the content of a single square.
type Piece int

const (
	Empty Piece = iota
	WhiteAmazon
	BlackAmazon
	Spear
)

// String returns the single character used when printing a board.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "-"
	case WhiteAmazon:
		return "W"
	case BlackAmazon:
		return "B"
	case Spear:
		return "S"
	}
	return "?"
}

// Side returns the owner of an amazon. ok is false for Empty and Spear.
func (p Piece) Side() (side Side, ok bool) {
	switch p {
	case WhiteAmazon:
		return White, true
	case BlackAmazon:
		return Black, true
	}
	return White, false
}

// IsAmazon reports whether p is a movable piece of either side.
func (p Piece) IsAmazon() bool {
	return p == WhiteAmazon || p == BlackAmazon
}

// Board dimensions.
const (
	BoardSize  = 10
	NumSquares = BoardSize * BoardSize

	// AmazonsPerSide is the number of pieces each side starts (and ends) with.
	AmazonsPerSide = 4

	ColBase = 'a'
	LastCol = ColBase + BoardSize - 1
)
