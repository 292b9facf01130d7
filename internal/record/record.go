// Package record reads and replays Amazons game records.
//
// A record is a list of tag pairs followed by the moves:
//
//	[Event "Club night"]
//	[White "Ada"]
//	[Black "amazons-go"]
//	[Result "1-0"]
//
//	1. d1-d7(g7) g10-g8(g9) {forced} 2. a4-b5(b8) ... 1-0
//
// Move numbers are optional. Comments are written in braces or after a
// semicolon up to the end of the line. A record ends with its result
// token, "1-0", "0-1" or "*", or where the next record's tags begin.
package record

import (
	"github.com/lgbarn/amazons-go/internal/amazons"
)

// Standard tag names.
const (
	EventTag     = "Event"
	SiteTag      = "Site"
	DateTag      = "Date"
	RoundTag     = "Round"
	WhiteTag     = "White"
	BlackTag     = "Black"
	ResultTag    = "Result"
	GameIDTag    = "GameId"
	PositionTag  = "Position" // Starting position when not the standard one
	PlyCountTag  = "PlyCount"
	TimeLimitTag = "TimeLimit"
)

// SevenTagRoster lists the tags every written record carries, in order.
var SevenTagRoster = []string{EventTag, SiteTag, DateTag, RoundTag, WhiteTag, BlackTag, ResultTag}

// Results.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Unfinished = "*"
)

// ResultFor returns the result string for a game won by winner.
func ResultFor(winner amazons.Side) string {
	if winner == amazons.White {
		return WhiteWins
	}
	return BlackWins
}

// Entry is one move in a record.
type Entry struct {
	Move     amazons.Move
	Comments []string
	Line     int // Source line (0 for generated records)
}

// Record is a complete game: tags, moves and comments.
type Record struct {
	// Tags for this game, and the order they were first set in.
	Tags     map[string]string
	TagOrder []string

	// Comments between the tags and the first move.
	PrefixComment []string

	Moves []Entry

	// Line numbers of the start and end of the record in the input.
	StartLine int
	EndLine   int
}

// New creates an empty record.
func New() *Record {
	return &Record{Tags: make(map[string]string)}
}

// GetTag returns a tag value, or empty string if not present.
func (r *Record) GetTag(name string) string {
	return r.Tags[name]
}

// SetTag sets a tag value.
func (r *Record) SetTag(name, value string) {
	if r.Tags == nil {
		r.Tags = make(map[string]string)
	}
	if _, ok := r.Tags[name]; !ok {
		r.TagOrder = append(r.TagOrder, name)
	}
	r.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (r *Record) HasTag(name string) bool {
	_, ok := r.Tags[name]
	return ok
}

// White returns the White player name.
func (r *Record) White() string {
	return r.GetTag(WhiteTag)
}

// Black returns the Black player name.
func (r *Record) Black() string {
	return r.GetTag(BlackTag)
}

// Result returns the game result, "*" when unknown.
func (r *Record) Result() string {
	if res := r.GetTag(ResultTag); res != "" {
		return res
	}
	return Unfinished
}

// ID returns the game id tag.
func (r *Record) ID() string {
	return r.GetTag(GameIDTag)
}

// PlyCount returns the number of moves in the record.
func (r *Record) PlyCount() int {
	return len(r.Moves)
}

// AppendMove adds a move, with optional comments, to the end of the record.
func (r *Record) AppendMove(m amazons.Move, comments ...string) {
	r.Moves = append(r.Moves, Entry{Move: m, Comments: comments})
}

// MoveList returns the moves without comments.
func (r *Record) MoveList() []amazons.Move {
	moves := make([]amazons.Move, len(r.Moves))
	for i, e := range r.Moves {
		moves[i] = e.Move
	}
	return moves
}

// ExtraTags returns the tags outside the seven tag roster in the order they
// were set.
func (r *Record) ExtraTags() []string {
	var extra []string
	for _, name := range r.TagOrder {
		if !isRosterTag(name) {
			extra = append(extra, name)
		}
	}
	return extra
}

func isRosterTag(name string) bool {
	for _, t := range SevenTagRoster {
		if t == name {
			return true
		}
	}
	return false
}
