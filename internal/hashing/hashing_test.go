package hashing

import (
	"testing"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/record"
	"github.com/lgbarn/amazons-go/internal/testutil"
)

// transposed pairs of move orders reaching the same final position.
var (
	orderA = []string{"d1-d2(d3)", "d10-d9(d8)", "g1-g2(g3)"}
	orderB = []string{"g1-g2(g3)", "d10-d9(d8)", "d1-d2(d3)"}
	other  = []string{"d1-d7(g7)", "g10-g8(g9)"}
)

func playRecord(t *testing.T, moves []string) (*record.Record, *amazons.Board) {
	t.Helper()
	b := amazons.NewBoard()
	testutil.PlayMoves(t, b, moves...)
	return record.FromBoard(b), b
}

func TestZobristHash_Consistency(t *testing.T) {
	if ZobristHash(amazons.NewBoard()) != ZobristHash(amazons.NewBoard()) {
		t.Error("identical boards produced different hashes")
	}
	if WeakHash(amazons.NewBoard()) != WeakHash(amazons.NewBoard()) {
		t.Error("identical boards produced different weak hashes")
	}

	_, a := playRecord(t, orderA)
	_, b := playRecord(t, orderB)
	testutil.AssertEqual(t, ZobristHash(a), ZobristHash(b), "transposed games reach the same position")
	testutil.AssertEqual(t, WeakHash(a), WeakHash(b))
}

func TestZobristHash_DifferentPositions(t *testing.T) {
	initial := amazons.NewBoard()
	_, moved := playRecord(t, other)

	if ZobristHash(initial) == ZobristHash(moved) {
		t.Error("different positions produced the same hash")
	}
	if WeakHash(initial) == WeakHash(moved) {
		t.Error("different positions produced the same weak hash")
	}
}

func TestZobristHash_SideToMove(t *testing.T) {
	white := amazons.NewBoard()
	black := amazons.NewBoard()
	black.SetTurn(amazons.Black)

	if ZobristHash(white) == ZobristHash(black) {
		t.Error("same squares with a different side to move should hash differently")
	}
}

func TestUpdateHash(t *testing.T) {
	b := amazons.NewBoard()
	h := ZobristHash(b)

	// Play the first legal move a dozen times.
	for ply := 0; ply < 12; ply++ {
		m, ok := b.LegalMoves(b.Turn()).Next()
		if !ok {
			t.Fatalf("no move at ply %d", ply)
		}
		mover := b.Turn()
		testutil.RequireNoError(t, b.MakeMove(m))
		h = UpdateHash(h, mover, m)
		testutil.AssertEqual(t, h, ZobristHash(b), "ply %d after %s", ply, m)
	}

	// The hash of the undone board matches undoing the update.
	last, _ := b.LastMove()
	b.Undo()
	testutil.AssertEqual(t, UpdateHash(h, b.Turn(), last), ZobristHash(b))
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	rec, b := playRecord(t, orderA)

	testutil.AssertFalse(t, detector.CheckAndAdd(rec, b), "first game")
	testutil.AssertTrue(t, detector.CheckAndAdd(rec, b), "same game again")
	testutil.AssertEqual(t, detector.DuplicateCount(), 1)
	testutil.AssertEqual(t, detector.UniqueCount(), 1)

	testutil.AssertFalse(t, detector.CheckAndAdd(nil, b), "nil record")
}

func TestDuplicateDetector_Transposition(t *testing.T) {
	recA, boardA := playRecord(t, orderA)
	recB, boardB := playRecord(t, orderB)

	tests := []struct {
		name       string
		exactMatch bool
		wantDup    bool
	}{
		{"final position only", false, true},
		{"exact move order", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewDuplicateDetector(tt.exactMatch, 0)
			detector.CheckAndAdd(recA, boardA)
			testutil.AssertEqual(t, detector.CheckAndAdd(recB, boardB), tt.wantDup)
		})
	}
}

func TestDuplicateDetector_DifferentGames(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	recA, boardA := playRecord(t, orderA)
	recC, boardC := playRecord(t, other)

	testutil.AssertFalse(t, detector.CheckAndAdd(recA, boardA))
	testutil.AssertFalse(t, detector.CheckAndAdd(recC, boardC))
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 2)
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)
	recA, boardA := playRecord(t, orderA)
	recC, boardC := playRecord(t, other)

	testutil.AssertFalse(t, detector.IsFull())
	detector.CheckAndAdd(recA, boardA)
	testutil.AssertTrue(t, detector.IsFull())

	testutil.AssertFalse(t, detector.CheckAndAdd(recC, boardC), "new game while full")
	testutil.AssertFalse(t, detector.CheckAndAdd(recC, boardC), "new games are not stored once full")
	testutil.AssertTrue(t, detector.CheckAndAdd(recA, boardA), "stored games are still found")
	testutil.AssertEqual(t, detector.UniqueCount(), 1)
}

func TestDuplicateDetector_Reset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	rec, b := playRecord(t, orderA)
	detector.CheckAndAdd(rec, b)
	detector.CheckAndAdd(rec, b)

	detector.Reset()
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 0)
	testutil.AssertFalse(t, detector.CheckAndAdd(rec, b))
}

func TestGameHasher(t *testing.T) {
	recA, boardA := playRecord(t, orderA)
	recB, _ := playRecord(t, orderB)

	final := NewGameHasher(HashFinalPosition)
	testutil.AssertEqual(t, final.HashRecord(recA), ZobristHash(boardA))
	testutil.AssertEqual(t, final.HashRecord(recA), final.HashRecord(recB))

	for _, ht := range []HashType{HashAllPositions, HashMoveSequence} {
		gh := NewGameHasher(ht)
		if gh.HashRecord(recA) == gh.HashRecord(recB) {
			t.Errorf("hash type %d should tell transpositions apart", ht)
		}
		testutil.AssertEqual(t, gh.HashRecord(recA), gh.HashRecord(recA))
	}

	illegal := record.New()
	illegal.AppendMove(amazons.MustParseMove("g10-g8(g9)"))
	testutil.AssertEqual(t, final.HashRecord(illegal), uint64(0))
}
