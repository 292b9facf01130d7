package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/amazons-go/internal/amazons"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/output"
)

const humanHelp = `Enter a move as from-to(spear), for example d1-d7(g7), or "d1 d7 g7".
Commands:
  board   show the board
  undo    take back your last move
  quit    resign the game
  help    show this message
`

// HumanPlayer reads moves from a text stream, one per line. Prompts,
// boards and complaints about bad input go to out.
type HumanPlayer struct {
	name      string
	in        *bufio.Scanner
	out       io.Writer
	showBoard bool
}

// NewHumanPlayer creates a human player reading from in. Players sharing
// one input stream must share the scanner too.
func NewHumanPlayer(name string, in *bufio.Scanner, out io.Writer, showBoard bool) *HumanPlayer {
	return &HumanPlayer{name: name, in: in, out: out, showBoard: showBoard}
}

// Name returns the player's name.
func (p *HumanPlayer) Name() string {
	return p.name
}

// Move prompts until a legal move or a command ending the turn is read.
// Malformed and illegal moves are reported and the prompt repeated. End of
// input aborts the game.
func (p *HumanPlayer) Move(ctx context.Context, b *amazons.Board) (amazons.Move, error) {
	if last, ok := b.LastMove(); ok {
		fmt.Fprintf(p.out, "%s played %s\n", b.Turn().Opponent(), last)
	}
	if p.showBoard {
		output.WriteBoard(p.out, b)
	}

	for {
		if err := ctx.Err(); err != nil {
			return amazons.Move{}, err
		}
		fmt.Fprintf(p.out, "%s (%s) to move: ", p.name, b.Turn())
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return amazons.Move{}, amzerrors.Wrap(err, "reading move")
			}
			fmt.Fprintln(p.out)
			return amazons.Move{}, amzerrors.ErrGameAborted
		}

		line := strings.TrimSpace(p.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "resign", "exit":
			return amazons.Move{}, amzerrors.ErrGameAborted
		case "undo":
			return amazons.Move{}, amzerrors.ErrUndoRequested
		case "board":
			output.WriteBoard(p.out, b)
			continue
		case "help", "?":
			io.WriteString(p.out, humanHelp)
			continue
		}

		m, err := parseHumanMove(line)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		if !b.IsLegal(m) {
			fmt.Fprintf(p.out, "%v\n", &amzerrors.MoveError{
				Err:      amzerrors.ErrIllegalMove,
				Ply:      b.NumMoves(),
				Side:     b.Turn().String(),
				MoveText: m.String(),
			})
			continue
		}
		return m, nil
	}
}

// parseHumanMove accepts the canonical move form and, for typing comfort,
// three squares separated by blanks ("d1 d7 g7").
func parseHumanMove(line string) (amazons.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return amazons.ParseMoveErr(line)
	}
	var sq [3]amazons.Square
	for i, f := range fields {
		parsed, ok := amazons.ParseSquare(f)
		if !ok {
			return amazons.Move{}, &amzerrors.ParseError{
				Err:      amzerrors.ErrMalformedMove,
				Expected: "square",
				Got:      fmt.Sprintf("%q", f),
			}
		}
		sq[i] = parsed
	}
	return amazons.NewMove(sq[0], sq[1], sq[2]), nil
}
