package engine

// Move-count thresholds above which the search goes one ply deeper. Spears
// fill the board as the game goes on, so the branching factor shrinks and
// deeper searches become affordable.
var depthThresholds = [...]int{20, 55, 75, 85}

// MaxDepth returns the search depth for a game in which numMoves moves have
// been played: 1 up to move 20, then 2, 3, 4 and finally 5 after move 85.
func MaxDepth(numMoves int) int {
	depth := 1
	for _, threshold := range depthThresholds {
		if numMoves > threshold {
			depth++
		}
	}
	return depth
}
