// Package password checks corrupted password database entries against the
// policy stored next to each password.
package password

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed indicates an entry not in "lo-hi c: password" form.
var ErrMalformed = errors.New("password: malformed entry")

// Entry is one database line.
type Entry struct {
	Lo, Hi   int
	Char     byte
	Password string
}

// Parse reads an entry such as "1-3 a: abcde".
func Parse(line string) (Entry, error) {
	policy, pw, ok := strings.Cut(line, ": ")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	bounds, char, ok := strings.Cut(policy, " ")
	if !ok || len(char) != 1 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	lo, hi, ok := strings.Cut(bounds, "-")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	e := Entry{Char: char[0], Password: pw}
	var err error
	if e.Lo, err = strconv.Atoi(lo); err != nil {
		return Entry{}, fmt.Errorf("%w: %q: %v", ErrMalformed, line, err)
	}
	if e.Hi, err = strconv.Atoi(hi); err != nil {
		return Entry{}, fmt.Errorf("%w: %q: %v", ErrMalformed, line, err)
	}
	return e, nil
}

// CountValid reports whether Char occurs between Lo and Hi times.
func (e Entry) CountValid() bool {
	n := strings.Count(e.Password, string(e.Char))
	return n >= e.Lo && n <= e.Hi
}

// PositionValid reports whether exactly one of the 1-based positions Lo and Hi
// holds Char. Positions past the end never match.
func (e Entry) PositionValid() bool {
	return e.at(e.Lo) != e.at(e.Hi)
}

func (e Entry) at(pos int) bool {
	return pos >= 1 && pos <= len(e.Password) && e.Password[pos-1] == e.Char
}

// Part1 counts entries valid under the occurrence-count policy.
func Part1(lines []string) (int, error) {
	return count(lines, Entry.CountValid)
}

// Part2 counts entries valid under the position policy.
func Part2(lines []string) (int, error) {
	return count(lines, Entry.PositionValid)
}

func count(lines []string, valid func(Entry) bool) (int, error) {
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := Parse(line)
		if err != nil {
			return 0, err
		}
		if valid(e) {
			n++
		}
	}
	return n, nil
}
