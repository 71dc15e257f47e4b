// Package tickets validates train tickets against field rules and works out
// which column holds which field.
package tickets

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"advent2020/internal/input"
	"advent2020/pkg/core"
)

// DeparturePrefix selects the fields multiplied together by Part2.
const DeparturePrefix = "departure"

var (
	// ErrMalformed indicates notes that do not have the rules, your ticket,
	// nearby tickets layout.
	ErrMalformed = errors.New("tickets: malformed notes")
	// ErrAmbiguous indicates columns that elimination cannot pin to a single
	// rule.
	ErrAmbiguous = errors.New("tickets: ambiguous field assignment")
)

// Range is an inclusive interval.
type Range struct{ Lo, Hi int }

// Rule is a named field accepting values in any of its ranges.
type Rule struct {
	Name   string
	Ranges []Range
}

// Accepts reports whether v lies in one of the rule's ranges.
func (r Rule) Accepts(v int) bool {
	for _, rg := range r.Ranges {
		if v >= rg.Lo && v <= rg.Hi {
			return true
		}
	}
	return false
}

// Notes is the parsed puzzle input.
type Notes struct {
	Rules  []Rule
	Mine   []int
	Nearby [][]int
}

// Parse reads the three blank-line separated sections.
func Parse(lines []string) (Notes, error) {
	groups := input.Groups(lines)
	if len(groups) != 3 {
		return Notes{}, fmt.Errorf("%w: want 3 sections, got %d", ErrMalformed, len(groups))
	}
	var n Notes
	for _, line := range groups[0] {
		r, err := parseRule(line)
		if err != nil {
			return Notes{}, err
		}
		n.Rules = append(n.Rules, r)
	}
	if len(groups[1]) != 2 || groups[1][0] != "your ticket:" {
		return Notes{}, fmt.Errorf("%w: your ticket section", ErrMalformed)
	}
	mine, err := parseTicket(groups[1][1])
	if err != nil {
		return Notes{}, err
	}
	n.Mine = mine
	if groups[2][0] != "nearby tickets:" {
		return Notes{}, fmt.Errorf("%w: nearby tickets section", ErrMalformed)
	}
	for _, line := range groups[2][1:] {
		t, err := parseTicket(line)
		if err != nil {
			return Notes{}, err
		}
		if len(t) != len(mine) {
			return Notes{}, fmt.Errorf("%w: ticket %q has %d fields, want %d", ErrMalformed, line, len(t), len(mine))
		}
		n.Nearby = append(n.Nearby, t)
	}
	return n, nil
}

// parseRule reads "departure location: 25-80 or 90-961".
func parseRule(line string) (Rule, error) {
	name, ranges, ok := strings.Cut(line, ": ")
	if !ok {
		return Rule{}, fmt.Errorf("%w: rule %q", ErrMalformed, line)
	}
	r := Rule{Name: name}
	for _, part := range strings.Split(ranges, " or ") {
		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			return Rule{}, fmt.Errorf("%w: rule %q", ErrMalformed, line)
		}
		l, err1 := strconv.Atoi(lo)
		h, err2 := strconv.Atoi(hi)
		if err := errors.Join(err1, err2); err != nil {
			return Rule{}, fmt.Errorf("%w: rule %q: %v", ErrMalformed, line, err)
		}
		r.Ranges = append(r.Ranges, Range{Lo: l, Hi: h})
	}
	return r, nil
}

func parseTicket(line string) ([]int, error) {
	fields := strings.Split(line, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: ticket %q: %v", ErrMalformed, line, err)
		}
		out[i] = v
	}
	return out, nil
}

func (n Notes) anyAccepts(v int) bool {
	for _, r := range n.Rules {
		if r.Accepts(v) {
			return true
		}
	}
	return false
}

// ErrorRate sums the nearby ticket values no rule accepts.
func (n Notes) ErrorRate() int {
	var bad []int
	for _, t := range n.Nearby {
		for _, v := range t {
			if !n.anyAccepts(v) {
				bad = append(bad, v)
			}
		}
	}
	return core.Sum(bad)
}

// Valid returns your ticket followed by every nearby ticket whose values are
// all accepted by some rule.
func (n Notes) Valid() [][]int {
	out := [][]int{n.Mine}
	for _, t := range n.Nearby {
		if !slices.ContainsFunc(t, func(v int) bool { return !n.anyAccepts(v) }) {
			out = append(out, t)
		}
	}
	return out
}

// Assign maps each rule name to its column. A column's candidates are the
// rules accepting its value on every valid ticket; columns with a single
// candidate are fixed and that rule is removed from the rest until all are
// placed.
func (n Notes) Assign() (map[string]int, error) {
	valid := n.Valid()
	cands := make([]map[string]struct{}, len(n.Mine))
	for col := range cands {
		cands[col] = map[string]struct{}{}
		for _, r := range n.Rules {
			if !slices.ContainsFunc(valid, func(t []int) bool { return !r.Accepts(t[col]) }) {
				cands[col][r.Name] = struct{}{}
			}
		}
	}

	fields := make(map[string]int, len(cands))
	for len(fields) < len(cands) {
		progress := false
		for col, c := range cands {
			if len(c) != 1 {
				continue
			}
			name := maps.Keys(c)[0]
			fields[name] = col
			for _, other := range cands {
				delete(other, name)
			}
			progress = true
		}
		if !progress {
			return nil, fmt.Errorf("%w: %d of %d columns placed", ErrAmbiguous, len(fields), len(cands))
		}
	}
	return fields, nil
}

// Part1 returns the ticket scanning error rate.
func Part1(lines []string) (int, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return n.ErrorRate(), nil
}

// Part2 multiplies the values of your ticket's DeparturePrefix fields.
func Part2(lines []string) (int, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	fields, err := n.Assign()
	if err != nil {
		return 0, err
	}
	names := maps.Keys(fields)
	slices.Sort(names)
	var vals []int
	for _, name := range names {
		if strings.HasPrefix(name, DeparturePrefix) {
			vals = append(vals, n.Mine[fields[name]])
		}
	}
	return core.Product(vals), nil
}
