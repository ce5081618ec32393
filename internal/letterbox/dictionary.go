package letterbox

import (
	"cmp"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Word is a dictionary entry accepted for a particular box.
type Word struct {
	Text    string
	Start   rune
	End     rune
	Letters LetterSet

	length int
}

// Len returns the word's length in letters.
func (w *Word) Len() int {
	return w.length
}

func newWord(b *Box, text string) *Word {
	start, _ := utf8.DecodeRuneInString(text)
	end, _ := utf8.DecodeLastRuneInString(text)
	return &Word{
		Text:    text,
		Start:   start,
		End:     end,
		Letters: b.Letters(text),
		length:  utf8.RuneCountInString(text),
	}
}

// Dictionary holds the words usable with one box, longest first, and an
// index of them by starting letter. It is never modified after Build.
type Dictionary struct {
	box      *Box
	words    []*Word
	byStart  map[rune][]*Word
	byText   map[string]*Word
	rejected map[Rejection]int
}

// Build filters lines down to the words that can be played on b. Lines are
// taken as-is. Accepted words are stably sorted by descending length and then
// indexed by their first letter, keeping that order within each letter.
func Build(b *Box, lines []string) *Dictionary {
	d := &Dictionary{
		box:      b,
		byStart:  make(map[rune][]*Word),
		byText:   make(map[string]*Word),
		rejected: make(map[Rejection]int),
	}

	for _, line := range lines {
		if reason := b.Classify(line); reason != Accepted {
			d.rejected[reason]++
			continue
		}
		d.words = append(d.words, newWord(b, line))
	}

	slices.SortStableFunc(d.words, func(x, y *Word) int {
		return cmp.Compare(y.length, x.length)
	})

	// Repeated lines stay in Words but are indexed once.
	for _, w := range d.words {
		if _, ok := d.byText[w.Text]; ok {
			continue
		}
		d.byText[w.Text] = w
		d.byStart[w.Start] = append(d.byStart[w.Start], w)
	}
	return d
}

func (d *Dictionary) Box() *Box {
	return d.box
}

// Words returns the dictionary in order. Callers must not modify it.
func (d *Dictionary) Words() []*Word {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// StartingWith returns the distinct words beginning with r, in dictionary
// order. Callers must not modify it.
func (d *Dictionary) StartingWith(r rune) []*Word {
	return d.byStart[r]
}

// Lookup finds an accepted word by its text.
func (d *Dictionary) Lookup(text string) (*Word, bool) {
	w, ok := d.byText[text]
	return w, ok
}

// Rejected returns how many lines each check turned away.
func (d *Dictionary) Rejected() map[Rejection]int {
	return maps.Clone(d.rejected)
}

// Suggest returns up to limit dictionary words that fuzzily match text, best
// match first.
func (d *Dictionary) Suggest(text string, limit int) []string {
	if text == "" || limit <= 0 {
		return nil
	}
	texts := make([]string, len(d.words))
	for i, w := range d.words {
		texts[i] = w.Text
	}

	matches := fuzzy.Find(text, texts)
	var out []string
	for _, m := range matches {
		if m.Str == text {
			continue
		}
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
