package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "adg\n  spaced  \nUPPER\n\nlast"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write word list: %v", err)
	}

	lines, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"adg", "  spaced  ", "UPPER", "", "last"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Load of a missing file returned no error")
	}
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error = %v, want ErrSourceUnavailable", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "adg", []string{"adg"}},
		{"trailing newline", "adg\nbeh\n", []string{"adg", "beh"}},
		{"crlf", "adg\r\nbeh\r\n", []string{"adg", "beh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	got, err := Read(strings.NewReader("adg\n" + long + "\nbeh\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if diff := cmp.Diff([]string{"adg", long, "beh"}, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestFold(t *testing.T) {
	got := Fold([]string{"ADG", "Beh", "cfil"})
	want := []string{"adg", "beh", "cfil"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fold() mismatch (-want +got):\n%s", diff)
	}
}
