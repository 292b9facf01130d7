// Package processing analyses and validates recorded games.
package processing

import (
	"errors"
	"fmt"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/engine"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/record"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard *amazons.Board
	Finished   bool
	Winner     amazons.Side // Only meaningful when Finished

	// Mobility[i] is engine.Mobility for White after i moves, so
	// Mobility[0] is the start position.
	Mobility []int

	// The move that changed White's mobility the most.
	SwingPly int // 1-based; 0 when the game has no moves
	Swing    int
}

// AnalyzeRecord replays rec and records the mobility balance after every
// move. On an illegal move the analysis of the moves before it is
// returned along with the error.
func AnalyzeRecord(rec *record.Record) (*GameAnalysis, error) {
	board, err := record.StartPosition(rec)
	if err != nil {
		return nil, err
	}

	analysis := &GameAnalysis{FinalBoard: board}
	analysis.Mobility = append(analysis.Mobility, engine.Mobility(board, amazons.White))

	for i, e := range rec.Moves {
		if err := board.MakeMove(e.Move); err != nil {
			return analysis, &amzerrors.GameError{
				Err:      err,
				GameID:   rec.ID(),
				PlyNum:   i + 1,
				MoveText: e.Move.String(),
				Line:     e.Line,
			}
		}
		mob := engine.Mobility(board, amazons.White)
		if d := mob - analysis.Mobility[i]; abs(d) > abs(analysis.Swing) {
			analysis.Swing = d
			analysis.SwingPly = i + 1
		}
		analysis.Mobility = append(analysis.Mobility, mob)
	}

	analysis.Winner, analysis.Finished = board.Winner()
	return analysis, nil
}

// Summary describes the analysis in one line.
func (ga *GameAnalysis) Summary() string {
	plies := len(ga.Mobility) - 1
	state := "unfinished"
	if ga.Finished {
		state = ga.Winner.String() + " wins"
	}
	s := fmt.Sprintf("%d plies, %s, mobility %+d to %+d", plies, state, ga.Mobility[0], ga.Mobility[plies])
	if ga.SwingPly > 0 {
		s += fmt.Sprintf(", largest swing %+d at ply %d", ga.Swing, ga.SwingPly)
	}
	return s
}

// AnnotateMobility appends a "mobility" comment to every move of rec with
// White's mobility after the move. The analysis must be of rec.
func AnnotateMobility(rec *record.Record, ga *GameAnalysis) {
	for i := range rec.Moves {
		if i+1 >= len(ga.Mobility) {
			break
		}
		rec.Moves[i].Comments = append(rec.Moves[i].Comments, fmt.Sprintf("mobility %+d", ga.Mobility[i+1]))
	}
}

// ValidationResult holds the result of record validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int   // Ply of the first illegal move, 0 if none
	Err      error // Why the record is invalid
	Warnings []string
}

// ValidateRecord checks that every move of rec is legal and that its
// result agrees with the final position. Missing roster tags and an
// unfinished game given a decisive result are only warnings.
func ValidateRecord(rec *record.Record) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, tag := range record.SevenTagRoster {
		if rec.GetTag(tag) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("missing tag: %s", tag))
		}
	}

	board, err := record.Replay(rec)
	if err != nil {
		result.Valid = false
		result.Err = err
		var gameErr *amzerrors.GameError
		if errors.As(err, &gameErr) && errors.Is(err, amzerrors.ErrIllegalMove) {
			result.ErrorPly = gameErr.PlyNum
		}
		return result
	}

	if res := rec.Result(); res != record.Unfinished && !board.GameOver() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("result %s but the game is not over", res))
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
