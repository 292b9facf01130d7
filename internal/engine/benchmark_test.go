package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/testutil"
)

var benchPositions = map[string]string{
	"Initial": amazons.InitialPosition,
	"Endgame": testutil.EndgamePosition,
	"Corner":  testutil.CornerPosition,
}

func BenchmarkStaticScore(b *testing.B) {
	for name, pos := range benchPositions {
		b.Run(name, func(b *testing.B) {
			board := amazons.MustParsePosition(pos)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				StaticScore(board)
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	cases := []struct {
		name  string
		pos   string
		depth int
	}{
		{"Initial_D1", amazons.InitialPosition, 1},
		{"Endgame_D2", testutil.EndgamePosition, 2},
		{"Endgame_D3", testutil.EndgamePosition, 3},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			board := amazons.MustParsePosition(tc.pos)
			s := New()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := s.Search(context.Background(), board, tc.depth); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMinimax_Endgame_D2(b *testing.B) {
	board := amazons.MustParsePosition(testutil.EndgamePosition)
	for i := 0; i < b.N; i++ {
		Minimax(board, 2)
	}
}
