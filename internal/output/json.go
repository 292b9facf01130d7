package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/record"
)

// JSONRecord represents a game record in JSON format.
type JSONRecord struct {
	ID              string            `json:"id,omitempty"`
	Tags            map[string]string `json:"tags"`
	Moves           []JSONMove        `json:"moves,omitempty"`
	Result          string            `json:"result"`
	Winner          string            `json:"winner,omitempty"`
	PlyCount        int               `json:"plyCount"`
	InitialPosition string            `json:"initialPosition,omitempty"`
	FinalPosition   string            `json:"finalPosition,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int      `json:"moveNumber,omitempty"`
	Side       string   `json:"side"` // "white" or "black"
	Move       string   `json:"move"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Spear      string   `json:"spear"`
	Comments   []string `json:"comments,omitempty"`
}

// JSONOutput holds multiple records for array output.
type JSONOutput struct {
	Games []*JSONRecord `json:"games"`
}

// RecordToJSON converts a record to JSON form. The final position is
// filled in when the moves replay cleanly.
func RecordToJSON(rec *record.Record) *JSONRecord {
	jr := &JSONRecord{
		ID:              rec.ID(),
		Tags:            copyTags(rec.Tags),
		Result:          rec.Result(),
		PlyCount:        rec.PlyCount(),
		InitialPosition: rec.GetTag(record.PositionTag),
	}

	moveNum, white := startNumbering(rec)
	jr.Moves = make([]JSONMove, 0, len(rec.Moves))
	for _, e := range rec.Moves {
		jm := JSONMove{
			Side:     sideName(white),
			Move:     e.Move.String(),
			From:     e.Move.From.String(),
			To:       e.Move.To.String(),
			Spear:    e.Move.Spear.String(),
			Comments: e.Comments,
		}
		if white {
			jm.MoveNumber = moveNum
		} else {
			moveNum++
		}
		white = !white
		jr.Moves = append(jr.Moves, jm)
	}

	if b, err := record.Replay(rec); err == nil {
		jr.FinalPosition = amazons.FormatPosition(b)
		if winner, over := b.Winner(); over {
			jr.Winner = strings.ToLower(winner.String())
		}
	}
	return jr
}

func sideName(white bool) string {
	if white {
		return "white"
	}
	return "black"
}

// copyTags copies record tags and ensures the seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(record.SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range record.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

// WriteJSON writes recs as a single indented JSON document.
func WriteJSON(w io.Writer, recs []*record.Record) error {
	out := &JSONOutput{Games: make([]*JSONRecord, 0, len(recs))}
	for _, rec := range recs {
		out.Games = append(out.Games, RecordToJSON(rec))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
