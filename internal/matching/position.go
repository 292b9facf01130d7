package matching

import (
	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/hashing"
	"github.com/lgbarn/amazons-go/internal/record"
)

// PositionMatcher finds records that pass through given positions. A
// position matches on its pieces and side to move; the move count is
// ignored.
type PositionMatcher struct {
	labels map[uint64]string
}

// NewPositionMatcher creates an empty position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{labels: make(map[uint64]string)}
}

// AddPosition adds a position in position text form. The label is
// reported when the position is found; it defaults to the text.
func (pm *PositionMatcher) AddPosition(text, label string) error {
	b, err := amazons.ParsePosition(text)
	if err != nil {
		return err
	}
	if label == "" {
		label = text
	}
	pm.labels[hashing.ZobristHash(b)] = label
	return nil
}

// PositionCount returns the number of positions searched for.
func (pm *PositionMatcher) PositionCount() int {
	return len(pm.labels)
}

// Match is a position found in a record.
type Match struct {
	Ply   int // Moves played when the position arose; 0 is the start
	Label string
}

// MatchRecord replays rec and returns the first position that is being
// searched for. Moves after an illegal one are not examined.
func (pm *PositionMatcher) MatchRecord(rec *record.Record) (Match, bool) {
	if len(pm.labels) == 0 {
		return Match{}, false
	}
	b, err := record.StartPosition(rec)
	if err != nil {
		return Match{}, false
	}

	h := hashing.ZobristHash(b)
	if label, ok := pm.labels[h]; ok {
		return Match{Ply: 0, Label: label}, true
	}
	for i, e := range rec.Moves {
		mover := b.Turn()
		if err := b.MakeMove(e.Move); err != nil {
			return Match{}, false
		}
		h = hashing.UpdateHash(h, mover, e.Move)
		if label, ok := pm.labels[h]; ok {
			return Match{Ply: i + 1, Label: label}, true
		}
	}
	return Match{}, false
}
