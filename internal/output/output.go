// Package output writes game records and boards as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	"github.com/lgbarn/amazons-go/internal/record"
)

// OutputWriter handles formatted output with line length control. The
// first write error is kept and later writes are dropped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

func (o *OutputWriter) print(s string) {
	if o.err == nil {
		_, o.err = io.WriteString(o.w, s)
	}
}

// Write writes a string, adding a space separator or a line break first.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

// WriteText writes rec in the text record format: the seven tag roster
// (missing values as "?"), any other tags, a blank line, then the moves and
// the result, followed by a blank line.
func WriteText(w io.Writer, rec *record.Record, cfg *config.OutputConfig) error {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))

	writeTags(ow, rec)
	ow.NewLine()
	writeMoves(ow, rec, cfg)
	ow.NewLine()
	return ow.Err()
}

func writeTags(ow *OutputWriter, rec *record.Record) {
	for _, tag := range record.SevenTagRoster {
		value := rec.GetTag(tag)
		if value == "" {
			value = "?"
		}
		ow.print(fmt.Sprintf("[%s \"%s\"]\n", tag, escapeTagValue(value)))
	}
	for _, tag := range rec.ExtraTags() {
		ow.print(fmt.Sprintf("[%s \"%s\"]\n", tag, escapeTagValue(rec.GetTag(tag))))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

func writeMoves(ow *OutputWriter, rec *record.Record, cfg *config.OutputConfig) {
	for _, c := range rec.PrefixComment {
		writeComment(ow, c)
	}

	moveNum, white := startNumbering(rec)
	for i, e := range rec.Moves {
		if cfg.KeepMoveNumbers {
			if white {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}
		ow.Write(e.Move.String())
		for _, c := range e.Comments {
			writeComment(ow, c)
		}

		if !white {
			moveNum++
		}
		white = !white
	}

	ow.Write(rec.Result())
	ow.NewLine()
}

// startNumbering returns the first move number and whether White moves
// first. Records without a valid Position tag start from move 1, White.
func startNumbering(rec *record.Record) (int, bool) {
	b, err := record.StartPosition(rec)
	if err != nil {
		return 1, true
	}
	return b.NumMoves()/2 + 1, b.Turn() == amazons.White
}

func writeComment(ow *OutputWriter, text string) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "}", ")"))
	if text != "" {
		ow.Write("{" + text + "}")
	}
}

// WriteBoard writes b with row numbers down the left and column letters
// underneath, then the side to move.
func WriteBoard(w io.Writer, b *amazons.Board) error {
	var sb strings.Builder
	for row := amazons.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%2d", row+1)
		for col := 0; col < amazons.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.At(col, row).String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < amazons.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(amazons.ColBase + col))
	}
	sb.WriteByte('\n')

	if winner, over := b.Winner(); over {
		fmt.Fprintf(&sb, "%s wins\n", winner)
	} else {
		fmt.Fprintf(&sb, "%s to move\n", b.Turn())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
