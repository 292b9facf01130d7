package record

import (
	"fmt"

	"github.com/lgbarn/amazons-go/internal/amazons"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
)

// StartPosition returns the board a record starts from: its Position tag,
// or the standard opening.
func StartPosition(rec *Record) (*amazons.Board, error) {
	pos := rec.GetTag(PositionTag)
	if pos == "" {
		return amazons.NewBoard(), nil
	}
	b, err := amazons.ParsePosition(pos)
	if err != nil {
		return nil, &amzerrors.GameError{Err: err, GameID: rec.ID(), Line: rec.StartLine}
	}
	return b, nil
}

// Replay plays every move of rec and returns the final board. Each move
// must be legal, and a decisive result must agree with the final position
// when the game was played out. On an illegal move the board reached so far
// is returned with the error.
func Replay(rec *Record) (*amazons.Board, error) {
	b, err := StartPosition(rec)
	if err != nil {
		return nil, err
	}

	for i, e := range rec.Moves {
		if err := b.MakeMove(e.Move); err != nil {
			return b, &amzerrors.GameError{
				Err:      err,
				GameID:   rec.ID(),
				PlyNum:   i + 1,
				MoveText: e.Move.String(),
				Line:     e.Line,
			}
		}
	}

	if err := checkResult(rec, b); err != nil {
		return b, err
	}
	return b, nil
}

func checkResult(rec *Record, b *amazons.Board) error {
	result := rec.Result()
	if result == Unfinished {
		return nil
	}
	if result != WhiteWins && result != BlackWins {
		return &amzerrors.GameError{
			Err:    amzerrors.Wrapf(amzerrors.ErrParseFailure, "unknown result %q", result),
			GameID: rec.ID(),
			Line:   rec.EndLine,
		}
	}
	if winner, over := b.Winner(); over && ResultFor(winner) != result {
		return &amzerrors.GameError{
			Err:    fmt.Errorf("result %s but %s has won: %w", result, winner, amzerrors.ErrParseFailure),
			GameID: rec.ID(),
			PlyNum: len(rec.Moves),
			Line:   rec.EndLine,
		}
	}
	return nil
}

// FromBoard builds a record of the moves played on b. The board must have
// been played from the standard opening.
func FromBoard(b *amazons.Board) *Record {
	rec := New()
	for _, m := range b.History() {
		rec.AppendMove(m)
	}
	rec.SetTag(PlyCountTag, fmt.Sprint(b.NumMoves()))
	if winner, over := b.Winner(); over {
		rec.SetTag(ResultTag, ResultFor(winner))
	} else {
		rec.SetTag(ResultTag, Unfinished)
	}
	return rec
}
