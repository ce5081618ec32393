package solver

import "github.com/aayushbajaj/lbsolver/internal/letterbox"

// Heuristic counts the letters of box that no word in chain uses. Zero means
// the chain covers the whole box.
//
// It counts letters rather than words still needed, so it can overestimate
// the remaining chain length and the search is not guaranteed to find the
// shortest chain first.
func Heuristic(box *letterbox.Box, chain []*letterbox.Word) int {
	return box.Missing(coverage(chain))
}

func coverage(chain []*letterbox.Word) letterbox.LetterSet {
	var s letterbox.LetterSet
	for _, w := range chain {
		s |= w.Letters
	}
	return s
}
