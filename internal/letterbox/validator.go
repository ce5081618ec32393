package letterbox

import "unicode/utf8"

// Rejection says why a word cannot be used with a box.
type Rejection int

const (
	Accepted Rejection = iota
	RejectLength
	RejectRepeatedLetter
	RejectOutsideBox
	RejectSameSide
)

func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectLength:
		return "length"
	case RejectRepeatedLetter:
		return "repeated letter"
	case RejectOutsideBox:
		return "outside box"
	case RejectSameSide:
		return "same side"
	default:
		return "unknown"
	}
}

// IsLegal reports whether no two adjacent letters of word share a side.
// Words shorter than two letters are trivially legal.
func (b *Box) IsLegal(word string) bool {
	var prev rune
	for i, r := range word {
		if i > 0 && b.SameSide(prev, r) {
			return false
		}
		prev = r
	}
	return true
}

// Classify runs the dictionary checks on word in order and returns the first
// one that fails, or Accepted.
func (b *Box) Classify(word string) Rejection {
	n := utf8.RuneCountInString(word)
	if n < MinWordLength || n > MaxWordLength {
		return RejectLength
	}

	if b.NoDuplicateLetters() && hasRepeatedLetter(word) {
		return RejectRepeatedLetter
	}

	for _, r := range word {
		if !b.Allows(r) {
			return RejectOutsideBox
		}
	}

	if !b.IsLegal(word) {
		return RejectSameSide
	}
	return Accepted
}

func hasRepeatedLetter(word string) bool {
	seen := make(map[rune]bool, len(word))
	for _, r := range word {
		if seen[r] {
			return true
		}
		seen[r] = true
	}
	return false
}
