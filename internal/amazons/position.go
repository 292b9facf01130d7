package amazons

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/amazons-go/internal/errors"
)

// InitialPosition is the position string for the standard starting position.
const InitialPosition = "3B2B3/10/10/B8B/10/10/W8W/10/10/3W2W3 w 0"

// Position string piece characters.
var positionChars = map[Piece]byte{
	WhiteAmazon: 'W',
	BlackAmazon: 'B',
	Spear:       'X',
}

// ParsePosition creates a board from a position string: ten rows from row
// 10 down to row 1 separated by '/', each made of W, B, X and run lengths
// of empty squares (1..10); then the side to move ("w" or "b"); then an
// optional move count. When the count is omitted the number of spears is
// used. The board has no history, so Undo is a no-op on it.
//
// Setup positions may hold any number of amazons, and an explicit move
// count need not match the spears. Moves and undos from the parsed board
// keep the amazon count and spears minus moves unchanged.
func ParsePosition(text string) (*Board, error) {
	parts := strings.Fields(text)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("expected 2 or 3 fields, got %d: %w", len(parts), errors.ErrInvalidPosition)
	}

	b := NewEmptyBoard()
	if err := parsePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fmt.Errorf("side to move %q: %w", parts[1], errors.ErrInvalidPosition)
	}

	b.numMoves = b.Count(Spear)
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("move count %q: %w", parts[2], errors.ErrInvalidPosition)
		}
		b.numMoves = n
	}
	b.invalidate()
	return b, nil
}

// MustParsePosition is like ParsePosition but panics on error. It is
// intended for fixed positions in tests and tables.
func MustParsePosition(text string) *Board {
	b, err := ParsePosition(text)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePlacement fills b from the piece placement field.
func parsePlacement(b *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != BoardSize {
		return fmt.Errorf("expected %d rows, got %d: %w", BoardSize, len(rows), errors.ErrInvalidPosition)
	}

	for i, rowText := range rows {
		row := BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rowText); j++ {
			c := rowText[j]
			switch {
			case c >= '1' && c <= '9':
				run := int(c - '0')
				if c == '1' && j+1 < len(rowText) && rowText[j+1] == '0' {
					run = 10
					j++
				}
				col += run
			case c == 'W':
				b.squares[Sq(col, row)] = WhiteAmazon
				col++
			case c == 'B':
				b.squares[Sq(col, row)] = BlackAmazon
				col++
			case c == 'X':
				b.squares[Sq(col, row)] = Spear
				col++
			default:
				return fmt.Errorf("row %d: unexpected %q: %w", row+1, c, errors.ErrInvalidPosition)
			}
			if col > BoardSize {
				return fmt.Errorf("row %d overflows: %w", row+1, errors.ErrInvalidPosition)
			}
		}
		if col != BoardSize {
			return fmt.Errorf("row %d has %d squares: %w", row+1, col, errors.ErrInvalidPosition)
		}
	}
	return nil
}

// FormatPosition returns the position string for b.
func FormatPosition(b *Board) string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < BoardSize; col++ {
			p := b.At(col, row)
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(positionChars[p])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	if b.turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(strconv.Itoa(b.numMoves))
	return sb.String()
}
