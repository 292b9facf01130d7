package matching

import (
	"strings"
	"testing"

	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/record"
	"github.com/lgbarn/amazons-go/internal/testutil"
)

const filterRecords = `[White "Ada"]
[Black "amazons-go"]
[Date "2024.02.01"]

1. d1-d7(g7) g10-g8(g9) 1-0

[White "amazons-go"]
[Black "Grace"]
[Date "2023.11.30"]

1. a4-b5(b8) *
`

func TestGameFilter(t *testing.T) {
	afterFirst := afterMoves(t, "d1-d7(g7)")

	tests := []struct {
		name  string
		setup func(t *testing.T, gf *GameFilter)
		want  []bool
	}{
		{
			name:  "no criteria",
			setup: func(t *testing.T, gf *GameFilter) {},
			want:  []bool{true, true},
		},
		{
			name:  "player",
			setup: func(t *testing.T, gf *GameFilter) { gf.AddPlayerFilter("grace") },
			want:  []bool{false, true},
		},
		{
			name:  "result",
			setup: func(t *testing.T, gf *GameFilter) { gf.AddResultFilter(record.WhiteWins) },
			want:  []bool{true, false},
		},
		{
			name: "position",
			setup: func(t *testing.T, gf *GameFilter) {
				testutil.RequireNoError(t, gf.AddPositionFilter(afterFirst))
			},
			want: []bool{true, false},
		},
		{
			name: "tag and position",
			setup: func(t *testing.T, gf *GameFilter) {
				gf.AddPlayerFilter("grace")
				testutil.RequireNoError(t, gf.AddPositionFilter(afterFirst))
			},
			want: []bool{false, false},
		},
		{
			name: "negated",
			setup: func(t *testing.T, gf *GameFilter) {
				gf.AddPlayerFilter("ada")
				gf.SetNegate(true)
			},
			want: []bool{false, true},
		},
		{
			name: "criteria file",
			setup: func(t *testing.T, gf *GameFilter) {
				criteria := "# recent games\nDate >= \"2024.01.01\"\n\nPosition \"" + afterFirst + "\"\n"
				testutil.RequireNoError(t, gf.LoadCriteria(strings.NewReader(criteria)))
				testutil.AssertEqual(t, gf.TagMatcher.CriteriaCount(), 1)
				testutil.AssertEqual(t, gf.PositionMatcher.PositionCount(), 1)
			},
			want: []bool{true, false},
		},
	}

	recs, err := record.Parse(strings.NewReader(filterRecords))
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, len(recs), 2)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gf := NewGameFilter()
			tt.setup(t, gf)
			for i, rec := range recs {
				testutil.AssertEqual(t, gf.MatchRecord(rec), tt.want[i], "record %d", i+1)
			}
		})
	}
}

func TestGameFilter_HasCriteria(t *testing.T) {
	gf := NewGameFilter()
	testutil.AssertFalse(t, gf.HasCriteria(), "new filter")
	gf.AddResultFilter(record.BlackWins)
	testutil.AssertTrue(t, gf.HasCriteria(), "after AddResultFilter")
}

func TestGameFilter_LoadCriteriaErrors(t *testing.T) {
	tests := []struct {
		name     string
		criteria string
		wantErr  error
		wantLine string
	}{
		{"bad tag line", "White \"x\"\n\"oops\"\n", amzerrors.ErrInvalidConfig, "line 2"},
		{"bad position", "Position \"10/10 w\"\n", amzerrors.ErrInvalidPosition, "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewGameFilter().LoadCriteria(strings.NewReader(tt.criteria))
			testutil.AssertErrorIs(t, err, tt.wantErr)
			if err != nil {
				testutil.AssertContains(t, err.Error(), tt.wantLine)
			}
		})
	}
}
