package amazons

import (
	"fmt"

	"github.com/lgbarn/amazons-go/internal/errors"
)

// Move is a complete Amazons turn: the amazon on From moves to To and then
// throws a spear to Spear. A Move carries no legality guarantee; that is a
// property of a Move on a particular Board.
type Move struct {
	From  Square
	To    Square
	Spear Square
}

// NewMove builds a move from its three squares.
func NewMove(from, to, spear Square) Move {
	return Move{From: from, To: to, Spear: spear}
}

// String returns the canonical text form "<from>-<to>(<spear>)".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String() + "(" + m.Spear.String() + ")"
}

// ParseMove parses a move in canonical form ("d1-d7(g7)"). ok is false
// for anything else, including surrounding whitespace.
func ParseMove(text string) (Move, bool) {
	m, err := ParseMoveErr(text)
	return m, err == nil
}

// MustParseMove is like ParseMove but panics on malformed input. It is
// intended for fixed move literals.
func MustParseMove(text string) Move {
	m, err := ParseMoveErr(text)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoveErr is like ParseMove but reports where the text stopped
// matching. The returned error wraps errors.ErrMalformedMove.
func ParseMoveErr(text string) (Move, error) {
	p := moveScanner{text: text}
	from := p.square("origin square")
	p.expect('-')
	to := p.square("destination square")
	p.expect('(')
	spear := p.square("spear square")
	p.expect(')')
	if p.err == nil && p.pos != len(text) {
		p.fail("end of move", fmt.Sprintf("%q", text[p.pos:]))
	}
	if p.err != nil {
		return Move{}, p.err
	}
	return NewMove(from, to, spear), nil
}

// moveScanner walks the canonical move form and records the first error.
type moveScanner struct {
	text string
	pos  int
	err  error
}

func (p *moveScanner) square(what string) Square {
	if p.err != nil {
		return NoSquare
	}
	sq, n := scanSquare(p.text[p.pos:])
	if n == 0 {
		p.fail(what, p.describeNext())
		return NoSquare
	}
	p.pos += n
	return sq
}

func (p *moveScanner) expect(c byte) {
	if p.err != nil {
		return
	}
	if p.pos >= len(p.text) || p.text[p.pos] != c {
		p.fail(fmt.Sprintf("'%c'", c), p.describeNext())
		return
	}
	p.pos++
}

func (p *moveScanner) describeNext() string {
	if p.pos >= len(p.text) {
		return "end of text"
	}
	return fmt.Sprintf("'%c'", p.text[p.pos])
}

func (p *moveScanner) fail(expected, got string) {
	p.err = &errors.ParseError{
		Err:      errors.ErrMalformedMove,
		Column:   p.pos + 1,
		Expected: expected,
		Got:      got,
	}
}
