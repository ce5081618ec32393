// Package letterbox models a Letter Boxed puzzle: four sides of three letters
// each, the rule that decides which words can be traced around them, and the
// dictionary of words that obey that rule.
package letterbox

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"unicode/utf8"
)

const (
	GroupSize  = 3
	GroupCount = 4

	MinWordLength = 3
	MaxWordLength = GroupSize * GroupCount
)

var (
	ErrInvalidGroupLength = errors.New("each group of letters must be 3 letters long")
	ErrGroupCount         = errors.New("a letter box needs exactly 4 groups")
)

// LetterSet is a set of box letters, one bit per distinct letter of the box
// it was derived from. Sets from different boxes are not comparable.
type LetterSet uint16

// Count returns the number of letters in the set.
func (s LetterSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Group is one side of the box.
type Group struct {
	text    string
	letters [GroupSize]rune
}

// NewGroup parses one side. Repeated letters within a side are allowed.
func NewGroup(s string) (Group, error) {
	if n := utf8.RuneCountInString(s); n != GroupSize {
		return Group{}, fmt.Errorf("%w: %q has %d", ErrInvalidGroupLength, s, n)
	}
	g := Group{text: s}
	copy(g.letters[:], []rune(s))
	slices.Sort(g.letters[:])
	return g, nil
}

// String returns the side as it was given.
func (g Group) String() string {
	return g.text
}

// Letters returns the side's letters in sorted order.
func (g Group) Letters() []rune {
	return slices.Clone(g.letters[:])
}

func (g Group) Contains(r rune) bool {
	return slices.Contains(g.letters[:], r)
}

// Box is an immutable letter box. It is safe for concurrent reads.
type Box struct {
	groups  [GroupCount]Group
	allowed []rune

	// sides[r] has bit i set when group i contains r. A letter given on more
	// than one side carries more than one bit.
	sides map[rune]uint8
	bit   map[rune]LetterSet
	full  LetterSet
}

// NewBox builds a box from its four sides.
func NewBox(groups ...string) (*Box, error) {
	if len(groups) != GroupCount {
		return nil, fmt.Errorf("%w: got %d", ErrGroupCount, len(groups))
	}

	b := &Box{
		sides: make(map[rune]uint8),
		bit:   make(map[rune]LetterSet),
	}
	for i, s := range groups {
		g, err := NewGroup(s)
		if err != nil {
			return nil, err
		}
		b.groups[i] = g
		for _, r := range g.letters {
			b.sides[r] |= 1 << i
		}
	}

	for r := range b.sides {
		b.allowed = append(b.allowed, r)
	}
	slices.Sort(b.allowed)
	for i, r := range b.allowed {
		b.bit[r] = 1 << i
		b.full |= 1 << i
	}
	return b, nil
}

func (b *Box) Groups() [GroupCount]Group {
	return b.groups
}

// AllowedLetters returns the distinct letters of the box, sorted.
func (b *Box) AllowedLetters() []rune {
	return slices.Clone(b.allowed)
}

// NoDuplicateLetters reports whether all twelve letter slots are distinct.
func (b *Box) NoDuplicateLetters() bool {
	return len(b.allowed) == GroupCount*GroupSize
}

// Allows reports whether r appears on any side.
func (b *Box) Allows(r rune) bool {
	_, ok := b.sides[r]
	return ok
}

// SameSide reports whether some side holds both a and b.
func (b *Box) SameSide(a, c rune) bool {
	return b.sides[a]&b.sides[c] != 0
}

// Letters returns the set of box letters used by word. Letters outside the
// box are ignored.
func (b *Box) Letters(word string) LetterSet {
	var s LetterSet
	for _, r := range word {
		s |= b.bit[r]
	}
	return s
}

// All returns the set holding every letter of the box.
func (b *Box) All() LetterSet {
	return b.full
}

// Missing counts the box letters absent from s.
func (b *Box) Missing(s LetterSet) int {
	return (b.full &^ s).Count()
}
