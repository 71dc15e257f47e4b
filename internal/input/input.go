// Package input loads puzzle text from the fixed testdata directory and
// derives the simple shapes the solvers consume.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Dir is the directory, relative to the working directory, that named inputs
// are read from. Go tests run inside their package directory, so each package
// keeps its own fixtures.
const Dir = "testdata"

var (
	// ErrUnreadable indicates a named input could not be opened or read.
	ErrUnreadable = errors.New("input: unreadable file")
	// ErrMalformed indicates a line could not be converted to the requested shape.
	ErrMalformed = errors.New("input: malformed line")
)

// ReadLines returns the lines of Dir/name in order, without line terminators.
func ReadLines(name string) ([]string, error) {
	path := filepath.Join(Dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return lines, nil
}

// MustReadLines is like ReadLines but panics when the file cannot be read.
func MustReadLines(name string) []string {
	lines, err := ReadLines(name)
	if err != nil {
		panic(err)
	}
	return lines
}

// Ints parses one decimal integer per non-blank line.
func Ints(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformed, i+1, line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Int64s parses one 64-bit decimal integer per non-blank line.
func Int64s(lines []string) ([]int64, error) {
	out := make([]int64, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformed, i+1, line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Groups splits lines into blocks separated by blank lines. Empty blocks are
// dropped.
func Groups(lines []string) [][]string {
	var groups [][]string
	var cur []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// NonBlank drops blank lines, typically the trailing one of a file.
func NonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
