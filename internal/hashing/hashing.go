// Package hashing detects duplicate Amazons games.
package hashing

import (
	"hash/fnv"
	"math/bits"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/record"
)

// DuplicateDetector tracks the games seen so far. Games are keyed on the
// Zobrist hash of their final position.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move order; otherwise games
	// that transpose into the same final position match
	useExactMatch  bool
	maxCapacity    int
	size           int
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	Hash         uint64 // Zobrist hash of the final position
	WeakHash     uint64 // WeakHash of the final position
	MoveCount    int
	SequenceHash uint64 // Hash of the move sequence
}

// NewDuplicateDetector creates a new duplicate detector. A maxCapacity of
// 0 means unlimited; once full, new games are checked but not stored.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of rec, whose final position is b.
func Signature(rec *record.Record, b *amazons.Board) GameSignature {
	return GameSignature{
		Hash:         ZobristHash(b),
		WeakHash:     WeakHash(b),
		MoveCount:    rec.PlyCount(),
		SequenceHash: NewGameHasher(HashMoveSequence).HashRecord(rec),
	}
}

// CheckAndAdd reports whether the game is a duplicate of one already seen,
// and remembers it if not.
func (d *DuplicateDetector) CheckAndAdd(rec *record.Record, b *amazons.Board) bool {
	if rec == nil || b == nil {
		return false
	}

	sig := Signature(rec, b)
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash || a.MoveCount != b.MoveCount {
		return false
	}
	return !d.useExactMatch || a.SequenceHash == b.SequenceHash
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the detector stopped storing new games.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}

// HashType specifies what to hash for duplicate detection.
type HashType int

const (
	// HashFinalPosition hashes only the final position
	HashFinalPosition HashType = iota
	// HashAllPositions combines the hashes of every position in the game
	HashAllPositions
	// HashMoveSequence hashes the move text
	HashMoveSequence
)

// GameHasher provides different hashing strategies for records.
type GameHasher struct {
	hashType HashType
}

// NewGameHasher creates a new game hasher with the specified strategy.
func NewGameHasher(ht HashType) *GameHasher {
	return &GameHasher{hashType: ht}
}

// HashRecord hashes rec. The position strategies replay the record and
// return 0 if it does not replay.
func (gh *GameHasher) HashRecord(rec *record.Record) uint64 {
	if gh.hashType == HashMoveSequence {
		return hashMoveSequence(rec)
	}

	b, err := record.StartPosition(rec)
	if err != nil {
		return 0
	}
	h := ZobristHash(b)
	all := h
	for i, e := range rec.Moves {
		mover := b.Turn()
		if err := b.MakeMove(e.Move); err != nil {
			return 0
		}
		h = UpdateHash(h, mover, e.Move)
		// Rotate by ply so that the same positions in another order differ.
		all ^= bits.RotateLeft64(h, i%63+1)
	}
	if gh.hashType == HashAllPositions {
		return all
	}
	return h
}

func hashMoveSequence(rec *record.Record) uint64 {
	h := fnv.New64a()
	for _, e := range rec.Moves {
		h.Write([]byte(e.Move.String()))
		h.Write([]byte{' '})
	}
	return h.Sum64()
}
