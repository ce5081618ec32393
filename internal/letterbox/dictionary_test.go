package letterbox

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func texts(words []*Word) []string {
	var out []string
	for _, w := range words {
		out = append(out, w.Text)
	}
	return out
}

func TestBuildSingleWord(t *testing.T) {
	b := newTestBox(t)
	d := Build(b, []string{"adg"})

	if diff := cmp.Diff([]string{"adg"}, texts(d.Words())); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"adg"}, texts(d.StartingWith('a'))); diff != "" {
		t.Errorf("StartingWith('a') mismatch (-want +got):\n%s", diff)
	}
	for _, r := range "bcdefghijkl" {
		if got := d.StartingWith(r); len(got) != 0 {
			t.Errorf("StartingWith(%q) = %v, want empty", r, texts(got))
		}
	}

	w, ok := d.Lookup("adg")
	if !ok {
		t.Fatal("Lookup(adg) not found")
	}
	if w.Start != 'a' || w.End != 'g' || w.Len() != 3 {
		t.Errorf("word = {Start:%q End:%q Len:%d}, want {a g 3}", w.Start, w.End, w.Len())
	}
	if got := w.Letters.Count(); got != 3 {
		t.Errorf("Letters.Count() = %d, want 3", got)
	}
}

func TestBuildOrdering(t *testing.T) {
	b := newTestBox(t)
	lines := []string{"adg", "adgj", "beh", "abd", "adgjb", "xyz", "cfil", "kc", "eh"}

	d := Build(b, lines)

	want := []string{"adgjb", "adgj", "cfil", "adg", "beh"}
	if diff := cmp.Diff(want, texts(d.Words())); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}

	index := map[rune][]string{
		'a': {"adgjb", "adgj", "adg"},
		'b': {"beh"},
		'c': {"cfil"},
	}
	for r, want := range index {
		if diff := cmp.Diff(want, texts(d.StartingWith(r))); diff != "" {
			t.Errorf("StartingWith(%q) mismatch (-want +got):\n%s", r, diff)
		}
	}

	wantRejected := map[Rejection]int{
		RejectLength:     2,
		RejectOutsideBox: 1,
		RejectSameSide:   1,
	}
	if diff := cmp.Diff(wantRejected, d.Rejected()); diff != "" {
		t.Errorf("Rejected() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmpty(t *testing.T) {
	d := Build(newTestBox(t), []string{"xyz", "ab", ""})
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
	if _, ok := d.Lookup("xyz"); ok {
		t.Error("Lookup(xyz) found a rejected word")
	}
}

func TestBuildKeepsLinesAsIs(t *testing.T) {
	d := Build(newTestBox(t), []string{"adg ", " adg", "ADG", "adg\r"})
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for untrimmed lines, got %v", d.Len(), texts(d.Words()))
	}
}

func TestBuildRepeatedLines(t *testing.T) {
	d := Build(newTestBox(t), []string{"ehkcfil", "adg", "ehkcfil"})

	if diff := cmp.Diff([]string{"ehkcfil", "ehkcfil", "adg"}, texts(d.Words())); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ehkcfil"}, texts(d.StartingWith('e'))); diff != "" {
		t.Errorf("StartingWith('e') mismatch (-want +got):\n%s", diff)
	}
	if w, ok := d.Lookup("ehkcfil"); !ok || w != d.Words()[0] {
		t.Error("Lookup(ehkcfil) should return the first copy")
	}
}

func TestDictionaryProperties(t *testing.T) {
	b := newTestBox(t)
	var lines []string
	letters := "abcdefghijkl"
	for _, x := range letters {
		for _, y := range letters {
			for _, z := range letters {
				lines = append(lines, string([]rune{x, y, z}))
				lines = append(lines, string([]rune{x, y, z, x}))
			}
		}
	}

	d := Build(b, lines)
	if d.Len() == 0 {
		t.Fatal("expected some words to be accepted")
	}

	for i, w := range d.Words() {
		rs := []rune(w.Text)
		for j := 0; j+1 < len(rs); j++ {
			if b.SameSide(rs[j], rs[j+1]) {
				t.Errorf("%q: %q and %q share a side", w.Text, rs[j], rs[j+1])
			}
		}
		seen := map[rune]bool{}
		for _, r := range rs {
			if !b.Allows(r) {
				t.Errorf("%q: %q is not on the box", w.Text, r)
			}
			if seen[r] {
				t.Errorf("%q: repeats %q", w.Text, r)
			}
			seen[r] = true
		}
		if i > 0 && d.Words()[i-1].Len() < w.Len() {
			t.Errorf("dictionary not sorted by length at %d: %q before %q", i, d.Words()[i-1].Text, w.Text)
		}
	}

	total := 0
	for _, r := range letters {
		for _, w := range d.StartingWith(r) {
			if w.Start != r {
				t.Errorf("StartingWith(%q) holds %q", r, w.Text)
			}
		}
		total += len(d.StartingWith(r))
	}
	if total != d.Len() {
		t.Errorf("index holds %d words, dictionary %d", total, d.Len())
	}
}

func TestSuggest(t *testing.T) {
	d := Build(newTestBox(t), []string{"adg", "adgj", "adgjb", "cfil"})

	got := d.Suggest("adg", 3)
	slices.Sort(got)
	if diff := cmp.Diff([]string{"adgj", "adgjb"}, got); diff != "" {
		t.Errorf("Suggest(adg) mismatch (-want +got):\n%s", diff)
	}

	if got := d.Suggest("adg", 1); len(got) != 1 {
		t.Errorf("Suggest(adg, 1) = %v, want one suggestion", got)
	}
	if got := d.Suggest("zzz", 3); len(got) != 0 {
		t.Errorf("Suggest(zzz) = %v, want none", got)
	}
	if got := d.Suggest("", 3); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}
