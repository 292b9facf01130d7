package engine

import "testing"

func TestMaxDepth(t *testing.T) {
	tests := []struct {
		numMoves int
		want     int
	}{
		{0, 1},
		{20, 1},
		{21, 2},
		{55, 2},
		{56, 3},
		{75, 3},
		{76, 4},
		{85, 4},
		{86, 5},
		{92, 5},
	}

	for _, tt := range tests {
		if got := MaxDepth(tt.numMoves); got != tt.want {
			t.Errorf("MaxDepth(%d) = %d, want %d", tt.numMoves, got, tt.want)
		}
	}
}

func TestSearcher_DepthFor(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		numMoves int
		want     int
	}{
		{"heuristic opening", nil, 0, 1},
		{"heuristic late", nil, 90, 5},
		{"fixed depth", []Option{WithMaxDepth(3)}, 0, 3},
		{"fixed depth ignores zero", []Option{WithMaxDepth(0)}, 30, 2},
		{"custom func", []Option{WithDepthFunc(func(n int) int { return n / 10 })}, 40, 4},
		{"custom func floor", []Option{WithDepthFunc(func(int) int { return 0 })}, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.opts...).DepthFor(tt.numMoves); got != tt.want {
				t.Errorf("DepthFor(%d) = %d, want %d", tt.numMoves, got, tt.want)
			}
		})
	}
}
