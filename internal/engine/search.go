package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/amazons-go/internal/amazons"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
)

// Nodes between deadline checks inside the tree. The root checks before
// every move regardless.
const checkInterval = 1024

// Stats describes the most recent root search.
type Stats struct {
	Depth     int           // Depth searched
	Nodes     int64         // Positions visited, root included
	Leaves    int64         // Positions scored with StaticScore
	Cutoffs   int64         // Alpha-beta cutoffs
	RootMoves int           // Root moves fully searched
	Complete  bool          // False when the deadline interrupted the root
	Elapsed   time.Duration // Wall time of the search
}

// Result is the outcome of a root search.
type Result struct {
	Move  amazons.Move
	Value int // From White's point of view
	Stats Stats
}

// Searcher picks moves with alpha-beta search. A Searcher is not safe for
// concurrent use; give each game its own.
type Searcher struct {
	maxDepth  int
	depthFunc func(numMoves int) int
	timeLimit time.Duration
	logw      io.Writer
	verbosity int

	// Per-search state.
	ctx     context.Context
	stopped bool
	stats   Stats

	lastMove  amazons.Move
	lastValue int
	hasLast   bool
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMaxDepth fixes the search depth, overriding the move-count heuristic.
// Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 1 {
			s.maxDepth = depth
		}
	}
}

// WithDepthFunc replaces MaxDepth as the move-count heuristic.
func WithDepthFunc(f func(numMoves int) int) Option {
	return func(s *Searcher) {
		if f != nil {
			s.depthFunc = f
		}
	}
}

// WithTimeLimit bounds each SelectMove call. Zero means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(s *Searcher) {
		if d >= 0 {
			s.timeLimit = d
		}
	}
}

// WithLogger sends per-search statistics to w. Verbosity 0 is silent.
func WithLogger(w io.Writer, verbosity int) Option {
	return func(s *Searcher) {
		s.logw = w
		s.verbosity = verbosity
	}
}

// New creates a Searcher. By default the depth comes from MaxDepth and
// there is no time limit.
func New(opts ...Option) *Searcher {
	s := &Searcher{depthFunc: MaxDepth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DepthFor returns the depth SelectMove will search for a game in which
// numMoves moves have been played.
func (s *Searcher) DepthFor(numMoves int) int {
	if s.maxDepth > 0 {
		return s.maxDepth
	}
	if d := s.depthFunc(numMoves); d >= 1 {
		return d
	}
	return 1
}

// SelectMove returns the best move for the side to move in b. b is not
// modified; the search runs on a copy.
//
// ErrNoLegalMoves is returned when the game is already over. If ctx ends
// (or the time limit expires) before a single root move has been searched
// the error is ErrSearchCancelled; otherwise the best move found so far is
// returned.
func (s *Searcher) SelectMove(ctx context.Context, b *amazons.Board) (amazons.Move, error) {
	if s.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeLimit)
		defer cancel()
	}

	res, err := s.Search(ctx, b, s.DepthFor(b.NumMoves()))
	if err != nil {
		return amazons.Move{}, err
	}
	return res.Move, nil
}

// Search runs a root search of b to the given depth.
func (s *Searcher) Search(ctx context.Context, b *amazons.Board, depth int) (Result, error) {
	if b.GameOver() {
		return Result{}, amzerrors.ErrNoLegalMoves
	}
	if depth < 1 {
		depth = 1
	}

	start := time.Now()
	s.ctx = ctx
	s.stopped = false
	s.stats = Stats{Depth: depth}
	s.hasLast = false

	work := b.Copy()
	move, value, found := s.searchRoot(work, depth)

	s.stats.Elapsed = time.Since(start)
	s.stats.Complete = !s.stopped
	s.ctx = nil

	if !found {
		s.logf(1, "search: cancelled at depth %d after %d nodes\n", depth, s.stats.Nodes)
		return Result{Stats: s.stats}, amzerrors.Wrapf(amzerrors.ErrSearchCancelled, "depth %d", depth)
	}

	s.lastMove, s.lastValue, s.hasLast = move, value, true
	s.logf(2, "search: %s value %d depth %d nodes %d cutoffs %d %v\n",
		move, value, depth, s.stats.Nodes, s.stats.Cutoffs, s.stats.Elapsed)
	if !s.stats.Complete {
		s.logf(1, "search: deadline after %d root moves, keeping %s\n", s.stats.RootMoves, move)
	}
	return Result{Move: move, Value: value, Stats: s.stats}, nil
}

// LastMove returns the move chosen by the most recent successful search.
func (s *Searcher) LastMove() (amazons.Move, bool) {
	return s.lastMove, s.hasLast
}

// LastValue returns the value of the most recent successful search, from
// White's point of view.
func (s *Searcher) LastValue() int {
	return s.lastValue
}

// Stats returns statistics for the most recent search.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// searchRoot is alphaBeta specialised to remember the best move. Only
// moves whose subtree finished before the deadline are considered.
func (s *Searcher) searchRoot(b *amazons.Board, depth int) (amazons.Move, int, bool) {
	s.stats.Nodes++
	maximizing := b.Turn() == amazons.White
	alpha, beta := -Infinity, Infinity

	var (
		bestMove  amazons.Move
		bestValue int
		found     bool
	)

	it := b.LegalMoves(b.Turn())
	for m, more := it.Next(); more; m, more = it.Next() {
		if s.expired() {
			break
		}
		b.MustMakeMove(m)
		v := s.alphaBeta(b, depth-1, alpha, beta)
		b.Undo()
		if s.stopped {
			break
		}
		s.stats.RootMoves++

		if !found || (maximizing && v > bestValue) || (!maximizing && v < bestValue) {
			bestMove, bestValue, found = m, v, true
		}
		if maximizing {
			alpha = max(alpha, bestValue)
		} else {
			beta = min(beta, bestValue)
		}
	}
	return bestMove, bestValue, found
}

// alphaBeta returns the value of b searched to depth within the window
// (alpha, beta). The board is restored before returning. Once the search
// has been stopped the returned value is meaningless.
func (s *Searcher) alphaBeta(b *amazons.Board, depth, alpha, beta int) int {
	s.stats.Nodes++
	if s.stats.Nodes%checkInterval == 0 && s.expired() {
		return 0
	}
	if depth == 0 || b.GameOver() {
		s.stats.Leaves++
		return StaticScore(b)
	}

	side := b.Turn()
	maximizing := side == amazons.White
	best := Infinity
	if maximizing {
		best = -Infinity
	}

	it := b.LegalMoves(side)
	for m, more := it.Next(); more; m, more = it.Next() {
		b.MustMakeMove(m)
		v := s.alphaBeta(b, depth-1, alpha, beta)
		b.Undo()
		if s.stopped {
			return 0
		}

		if maximizing {
			if v > best {
				best = v
			}
			alpha = max(alpha, best)
		} else {
			if v < best {
				best = v
			}
			beta = min(beta, best)
		}
		if alpha >= beta {
			s.stats.Cutoffs++
			break
		}
	}
	return best
}

func (s *Searcher) expired() bool {
	if s.stopped {
		return true
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		s.stopped = true
	}
	return s.stopped
}

func (s *Searcher) logf(level int, format string, args ...interface{}) {
	if s.logw == nil || s.verbosity < level {
		return
	}
	fmt.Fprintf(s.logw, format, args...)
}

// AlphaBeta returns the value of b, from White's point of view, searched to
// depth with alpha-beta pruning inside the window (alpha, beta). It has no
// deadline and does not modify b.
func AlphaBeta(b *amazons.Board, depth, alpha, beta int) int {
	s := &Searcher{ctx: context.Background()}
	return s.alphaBeta(b.Copy(), depth, alpha, beta)
}
