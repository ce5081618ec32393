// Package wordlist reads the newline-delimited word source.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// DefaultPath is where the word list is expected, relative to the working
// directory.
const DefaultPath = "./yawl_mendel_lee_cooper_word-list-for-lb.txt"

var ErrSourceUnavailable = errors.New("word source unavailable")

// Load returns every line of the file at path. Lines are not trimmed or
// filtered.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// Read returns every line of r without its line terminator. Lines may be of
// any length.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Fold lowercases every entry in place and returns the slice.
func Fold(words []string) []string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}
