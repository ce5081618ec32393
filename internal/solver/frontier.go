package solver

import (
	"container/heap"

	"github.com/aayushbajaj/lbsolver/internal/letterbox"
)

// state is a partial chain waiting in the frontier.
type state struct {
	chain     []*letterbox.Word
	cost      int
	heuristic int

	// seq orders states of equal priority by when they were first pushed.
	seq uint64
	// expanded is set once the state's successors have been pushed.
	expanded bool
}

func seed(box *letterbox.Box, w *letterbox.Word) *state {
	chain := []*letterbox.Word{w}
	return &state{
		chain:     chain,
		cost:      1,
		heuristic: Heuristic(box, chain),
	}
}

// extend returns a new state with w appended to s's chain.
func (s *state) extend(box *letterbox.Box, w *letterbox.Word) *state {
	chain := make([]*letterbox.Word, len(s.chain), len(s.chain)+1)
	copy(chain, s.chain)
	chain = append(chain, w)
	return &state{
		chain:     chain,
		cost:      s.cost + 1,
		heuristic: Heuristic(box, chain),
	}
}

// priority is the frontier key; the smallest is popped first.
func (s *state) priority() int {
	return s.cost + s.heuristic
}

func (s *state) last() *letterbox.Word {
	return s.chain[len(s.chain)-1]
}

func (s *state) words() Chain {
	out := make(Chain, len(s.chain))
	for i, w := range s.chain {
		out[i] = w.Text
	}
	return out
}

// frontier is a min-heap of states keyed on cost + heuristic.
type frontier struct {
	items []*state
	seq   uint64
}

func (f frontier) Len() int { return len(f.items) }

func (f frontier) Less(i, j int) bool {
	pi, pj := f.items[i].priority(), f.items[j].priority()
	if pi != pj {
		return pi < pj
	}
	return f.items[i].seq < f.items[j].seq
}

func (f frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(*state))
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return s
}

func (f *frontier) push(s *state) {
	f.seq++
	s.seq = f.seq
	heap.Push(f, s)
}

func (f *frontier) pop() *state {
	return heap.Pop(f).(*state)
}

// restore puts previously popped states back, keeping their original order.
func (f *frontier) restore(states []*state) {
	f.items = append(f.items, states...)
	heap.Init(f)
}
