package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	"github.com/lgbarn/amazons-go/internal/record"
	"github.com/lgbarn/amazons-go/internal/testutil"
)

func sampleRecord() *record.Record {
	rec := record.New()
	rec.SetTag(record.EventTag, "Test")
	rec.SetTag(record.WhiteTag, "Ada")
	rec.SetTag(record.GameIDTag, "abc")
	rec.AppendMove(amazons.MustParseMove("d1-d7(g7)"))
	rec.AppendMove(amazons.MustParseMove("g10-g8(g9)"), "book")
	rec.AppendMove(amazons.MustParseMove("a4-b5(b8)"))
	rec.SetTag(record.ResultTag, record.Unfinished)
	return rec
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, sampleRecord(), nil)
	testutil.RequireNoError(t, err)

	want := `[Event "Test"]
[Site "?"]
[Date "?"]
[Round "?"]
[White "Ada"]
[Black "?"]
[Result "*"]
[GameId "abc"]

1. d1-d7(g7) g10-g8(g9) {book} 2. a4-b5(b8) *

`
	testutil.AssertEqual(t, buf.String(), want)
}

func TestWriteText_LineLength(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.MaxLineLength = 20

	var buf bytes.Buffer
	testutil.RequireNoError(t, WriteText(&buf, sampleRecord(), cfg))

	want := "1. d1-d7(g7)\ng10-g8(g9) {book} 2.\na4-b5(b8) *\n"
	testutil.AssertContains(t, buf.String(), want)
}

func TestWriteText_NoMoveNumbers(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.KeepMoveNumbers = false

	var buf bytes.Buffer
	testutil.RequireNoError(t, WriteText(&buf, sampleRecord(), cfg))
	testutil.AssertContains(t, buf.String(), "\nd1-d7(g7) g10-g8(g9) {book} a4-b5(b8) *\n")
}

func TestWriteText_BlackStarts(t *testing.T) {
	rec := record.New()
	rec.SetTag(record.PositionTag, testutil.WithTurn(testutil.StuckPosition, amazons.Black))
	rec.AppendMove(amazons.MustParseMove("j10-j9(j10)"))
	rec.SetTag(record.ResultTag, record.BlackWins)

	var buf bytes.Buffer
	testutil.RequireNoError(t, WriteText(&buf, rec, nil))
	// 97 spears on the board count as 97 moves played.
	testutil.AssertContains(t, buf.String(), "\n49... j10-j9(j10) 0-1\n")
	testutil.AssertContains(t, buf.String(), `[Position "`)
}

func TestWriteText_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec := sampleRecord()
	testutil.RequireNoError(t, WriteText(&buf, rec, nil))
	testutil.RequireNoError(t, WriteText(&buf, rec, nil))

	recs, err := record.Parse(&buf)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, len(recs), 2)
	for _, got := range recs {
		testutil.AssertEqual(t, got.MoveList(), rec.MoveList())
		testutil.AssertEqual(t, got.Moves[1].Comments, []string{"book"})
		testutil.AssertEqual(t, got.ID(), "abc")
		testutil.AssertEqual(t, got.GetTag(record.SiteTag), "?")
	}
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, escapeTagValue(tt.in), tt.want, "escapeTagValue(%q)", tt.in)
	}
}

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	testutil.RequireNoError(t, WriteBoard(&buf, amazons.NewBoard()))

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[0], "10 - - - B - - B - - -")
	testutil.AssertEqual(t, lines[3], " 7 B - - - - - - - - B")
	testutil.AssertEqual(t, lines[9], " 1 - - - W - - W - - -")
	testutil.AssertEqual(t, lines[10], "   a b c d e f g h i j")
	testutil.AssertEqual(t, lines[11], "White to move")

	buf.Reset()
	testutil.RequireNoError(t, WriteBoard(&buf, testutil.MustPosition(t, testutil.StuckPosition)))
	testutil.AssertContains(t, buf.String(), "Black wins\n")
}
