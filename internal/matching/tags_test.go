package matching

import (
	"testing"

	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/record"
	"github.com/lgbarn/amazons-go/internal/testutil"
)

func testRecord() *record.Record {
	rec := record.New()
	rec.SetTag(record.EventTag, "Club night")
	rec.SetTag(record.DateTag, "2024.03.15")
	rec.SetTag(record.RoundTag, "7")
	rec.SetTag(record.WhiteTag, "Ada Lovelace")
	rec.SetTag(record.BlackTag, "amazons-go")
	rec.SetTag(record.ResultTag, record.WhiteWins)
	return rec
}

func TestTagMatcher_ParseCriterion(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`Event "Club night"`, true},
		{`Event "club NIGHT"`, true},
		{`Event = "Other"`, false},
		{`Event != "Other"`, true},
		{`Event <> "Club night"`, false},
		{`Date >= "2024.01.01"`, true},
		{`Date < "2024.03"`, false},
		{`Date <= "2024.03.15"`, true},
		{`Round > "10"`, false},
		{`Round < "10"`, true},
		{`White ~ "^Ada"`, true},
		{`Black ~ "^Ada"`, false},
		{`Result "1-0"`, true},
		{`Site != "anywhere"`, true},
		{`Site = "anywhere"`, false},
		{`Black = amazons-go`, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tm := NewTagMatcher()
			testutil.RequireNoError(t, tm.ParseCriterion(tt.line))
			testutil.AssertEqual(t, tm.MatchRecord(testRecord()), tt.want)
		})
	}
}

func TestTagMatcher_Errors(t *testing.T) {
	for _, line := range []string{`= "x"`, `White ~ "("`} {
		t.Run(line, func(t *testing.T) {
			err := NewTagMatcher().ParseCriterion(line)
			testutil.AssertErrorIs(t, err, amzerrors.ErrInvalidConfig)
		})
	}
}

func TestTagMatcher_AllCriteriaMustMatch(t *testing.T) {
	tm := NewTagMatcher()
	testutil.AssertTrue(t, tm.MatchRecord(testRecord()), "empty matcher should match")

	tm.AddPlayerCriterion("lovelace")
	testutil.AssertTrue(t, tm.MatchRecord(testRecord()), "player criterion should match White")

	tm.AddPlayerCriterion("AMAZONS")
	testutil.AssertTrue(t, tm.MatchRecord(testRecord()), "player criterion should match Black")

	testutil.RequireNoError(t, tm.AddCriterion(record.ResultTag, record.BlackWins, OpEqual))
	testutil.AssertFalse(t, tm.MatchRecord(testRecord()), "result criterion should fail")
	testutil.AssertEqual(t, tm.CriteriaCount(), 3)
}

func TestTagMatcher_MissingResultIsUnfinished(t *testing.T) {
	tm := NewTagMatcher()
	testutil.RequireNoError(t, tm.AddCriterion(record.ResultTag, record.Unfinished, OpEqual))
	testutil.AssertTrue(t, tm.MatchRecord(record.New()), "a record without a result is unfinished")
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024.01.02", "2024.01.10", -1},
		{"2024.12", "2024.01.31", 1},
		{"2024.02.01", "2024.02", 0},
		{"9", "10", -1},
		{"1.5", "1.50", 0},
		{"b", "A", 1},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, compareValues(tt.a, tt.b), tt.want, "compareValues(%q, %q)", tt.a, tt.b)
	}
}
