package amazons

// ReachableIter yields every square reachable from a starting square by an
// unblocked queen move. Squares come out direction by direction (North
// first, then clockwise), nearest first within a direction.
//
// The iterator reads the live board: the board must not change between
// calls to Next except by moves that have been undone again.
type ReachableIter struct {
	board   *Board
	from    Square
	asEmpty Square

	// Cursor: the last square returned was steps squares away in dir.
	dir   Direction
	steps int
}

// ReachableFrom returns an iterator over the squares reachable from from,
// treating asEmpty (which may be NoSquare) as empty. The contents of from
// itself are ignored.
func (b *Board) ReachableFrom(from, asEmpty Square) *ReachableIter {
	return &ReachableIter{board: b, from: from, asEmpty: asEmpty}
}

// Next returns the next reachable square. ok is false once the iterator is
// exhausted; it stays exhausted.
func (it *ReachableIter) Next() (Square, bool) {
	for it.dir < NumDirections {
		next := it.from.QueenMove(it.dir, it.steps+1)
		if it.board.isOpen(next, it.asEmpty) {
			it.steps++
			return next, true
		}
		it.dir++
		it.steps = 0
	}
	return NoSquare, false
}

// Cursor returns the direction being walked and the distance of the last
// square returned in it.
func (it *ReachableIter) Cursor() (dir Direction, steps int) {
	return it.dir, it.steps
}

// Done reports whether the iterator is exhausted.
func (it *ReachableIter) Done() bool {
	return it.dir >= NumDirections
}

// Collect drains the iterator into a slice.
func (it *ReachableIter) Collect() []Square {
	var out []Square
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		out = append(out, sq)
	}
	return out
}

// MoveIter yields every legal move for one side. Starting squares are
// scanned in increasing index order; for each, destinations follow
// ReachableFrom(start, NoSquare) order, and for each destination spear
// targets follow ReachableFrom(dest, start) order.
//
// Like ReachableIter it reads the live board.
type MoveIter struct {
	board *Board
	piece Piece

	// Next index to scan for a starting square.
	scan Square

	// Current start, destination and the two nested iterators. dests is nil
	// before the first start is found; spears is nil between destinations.
	start  Square
	dest   Square
	dests  *ReachableIter
	spears *ReachableIter
}

// LegalMoves returns an iterator over all legal moves for side, regardless
// of whose turn it is.
func (b *Board) LegalMoves(side Side) *MoveIter {
	return &MoveIter{board: b, piece: side.Piece(), start: NoSquare, dest: NoSquare}
}

// Next returns the next legal move. ok is false once the iterator is
// exhausted.
func (it *MoveIter) Next() (Move, bool) {
	for {
		if it.spears != nil {
			if spear, ok := it.spears.Next(); ok {
				return Move{From: it.start, To: it.dest, Spear: spear}, true
			}
			it.spears = nil
		}
		if it.dests != nil {
			if dest, ok := it.dests.Next(); ok {
				it.dest = dest
				it.spears = it.board.ReachableFrom(dest, it.start)
				continue
			}
			it.dests = nil
		}
		if !it.advanceStart() {
			return Move{}, false
		}
	}
}

// advanceStart moves to the next square holding one of our amazons.
func (it *MoveIter) advanceStart() bool {
	for it.scan < NumSquares {
		sq := it.scan
		it.scan++
		if it.board.squares[sq] == it.piece {
			it.start = sq
			it.dest = NoSquare
			it.dests = it.board.ReachableFrom(sq, NoSquare)
			return true
		}
	}
	return false
}

// Cursor returns the current starting square and destination (NoSquare
// before they have been chosen).
func (it *MoveIter) Cursor() (start, dest Square) {
	return it.start, it.dest
}

// Collect drains the iterator into a slice.
func (it *MoveIter) Collect() []Move {
	var out []Move
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		out = append(out, m)
	}
	return out
}

// AllLegalMoves returns every legal move for side in enumeration order.
func (b *Board) AllLegalMoves(side Side) []Move {
	return b.LegalMoves(side).Collect()
}

// CountMoves returns the number of legal moves available to side
// (its mobility).
func (b *Board) CountMoves(side Side) int {
	it := b.LegalMoves(side)
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// HasMove reports whether side has at least one legal move.
func (b *Board) HasMove(side Side) bool {
	_, ok := b.LegalMoves(side).Next()
	return ok
}
