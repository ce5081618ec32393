// Package solver searches a letterbox dictionary for the shortest chains of
// words that use every letter of the box.
package solver

import (
	"log/slog"
	"strings"
	"time"

	"github.com/aayushbajaj/lbsolver/internal/letterbox"
)

// MaxDepth is the longest chain the search will consider.
const MaxDepth = 6

// MaxSolutionsAtDepth is how many solutions a search collects before it
// returns, once it has reached the given chain length. Short chains are
// collected four at a time; from four words on the first one wins.
func MaxSolutionsAtDepth(depth int) int {
	if depth > 3 {
		return 1
	}
	return 4
}

// Chain is an ordered list of words where each word starts with the last
// letter of the one before it.
type Chain []string

func (c Chain) String() string {
	return "[" + strings.Join(c, " ") + "]"
}

// Stats describes the work a search did.
type Stats struct {
	Popped       int
	Pushed       int
	PeakFrontier int
	Duration     time.Duration
}

// Result is the outcome of one search. Depth is the chain length the search
// stopped at, which is MaxDepth when no solution exists.
type Result struct {
	Solutions []Chain
	Depth     int
	Stats     Stats
}

// Solver runs searches over a single dictionary. It holds no state between
// calls to Solve.
type Solver struct {
	dict   *letterbox.Dictionary
	logger *slog.Logger
}

type Option func(*Solver)

// WithLogger reports per-depth progress to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(dict *letterbox.Dictionary, opts ...Option) *Solver {
	s := &Solver{
		dict:   dict,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve finds chains that cover every letter of the box, never using a word
// twice in one chain or any word in ignore. It tries chain lengths 1 through
// MaxDepth in turn and returns the solutions of the first length that has
// any. An empty result is not an error.
func (s *Solver) Solve(ignore []string) Result {
	start := time.Now()
	r := &run{
		box:     s.dict.Box(),
		dict:    s.dict,
		ignored: make(map[string]struct{}, len(ignore)),
	}
	for _, w := range ignore {
		r.ignored[w] = struct{}{}
	}

	for _, w := range s.dict.Words() {
		if r.isIgnored(w.Text) {
			continue
		}
		if first, _ := s.dict.Lookup(w.Text); first != w {
			continue
		}
		r.push(seed(r.box, w))
	}

	res := Result{Depth: MaxDepth}
	for depth := 1; depth <= MaxDepth; depth++ {
		if sols, done := r.drain(depth); done {
			res.Solutions = sols
			res.Depth = depth
			break
		}
		s.logger.Info("no solutions at depth",
			"depth", depth,
			"restored", len(r.visited),
		)
		r.frontier.restore(r.visited)
		r.visited = r.visited[:0]
	}
	if res.Solutions == nil {
		res.Solutions = []Chain{}
	}

	res.Stats = r.stats
	res.Stats.Duration = time.Since(start)
	s.logger.Debug("search finished",
		"depth", res.Depth,
		"solutions", len(res.Solutions),
		"popped", res.Stats.Popped,
		"pushed", res.Stats.Pushed,
		"peak", res.Stats.PeakFrontier,
		"dur", res.Stats.Duration.Round(time.Millisecond),
	)
	return res
}

// run is the state of one Solve call.
type run struct {
	box     *letterbox.Box
	dict    *letterbox.Dictionary
	ignored map[string]struct{}

	frontier frontier
	visited  []*state
	stats    Stats
}

func (r *run) isIgnored(text string) bool {
	_, ok := r.ignored[text]
	return ok
}

func (r *run) push(st *state) {
	r.frontier.push(st)
	r.stats.Pushed++
	if n := r.frontier.Len(); n > r.stats.PeakFrontier {
		r.stats.PeakFrontier = n
	}
}

// drain pops states until the frontier is empty or enough solutions of at
// most depth words are found. It reports whether any were found.
func (r *run) drain(depth int) ([]Chain, bool) {
	var solutions []Chain
	limit := MaxSolutionsAtDepth(depth)

	for r.frontier.Len() > 0 {
		st := r.frontier.pop()
		r.stats.Popped++
		r.visited = append(r.visited, st)

		if len(st.chain) > depth {
			continue
		}
		if st.heuristic == 0 {
			solutions = append(solutions, st.words())
			if len(solutions) >= limit {
				return solutions, true
			}
			continue
		}
		// States restored from a shallower depth already have their
		// successors in the frontier.
		if st.expanded {
			continue
		}
		r.expand(st)
	}
	return solutions, len(solutions) > 0
}

func (r *run) expand(st *state) {
	st.expanded = true

	used := make(map[string]struct{}, len(st.chain))
	for _, w := range st.chain {
		used[w.Text] = struct{}{}
	}

	for _, next := range r.dict.StartingWith(st.last().End) {
		if _, ok := used[next.Text]; ok {
			continue
		}
		if r.isIgnored(next.Text) {
			continue
		}
		r.push(st.extend(r.box, next))
	}
}
