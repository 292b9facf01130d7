package amazons

// Status is the state of a game as far as the board can tell.
type Status int

const (
	// Unknown means the outcome has not been computed for this position.
	Unknown Status = iota
	// Ongoing means the side to move has at least one legal move.
	Ongoing
	// Won means the side to move is stuck and Winner has won.
	Won
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Won:
		return "Won"
	}
	return "Unknown"
}

// Outcome is the result of a position. Winner is only meaningful when
// Status is Won.
type Outcome struct {
	Status Status
	Winner Side
}

// Outcome computes (or returns the memoised) outcome of the position. A side
// loses exactly when it is to move and has no legal move.
func (b *Board) Outcome() Outcome {
	if b.outcome.Status == Unknown {
		if b.HasMove(b.turn) {
			b.outcome = Outcome{Status: Ongoing}
		} else {
			b.outcome = Outcome{Status: Won, Winner: b.turn.Opponent()}
		}
	}
	return b.outcome
}

// Winner returns the winning side, or ok == false while the game is still
// in progress.
func (b *Board) Winner() (winner Side, ok bool) {
	o := b.Outcome()
	return o.Winner, o.Status == Won
}

// GameOver reports whether the side to move has no legal move.
func (b *Board) GameOver() bool {
	_, over := b.Winner()
	return over
}
