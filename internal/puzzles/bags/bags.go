// Package bags answers containment questions over the luggage rules graph.
package bags

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Target is the bag colour both parts ask about.
const Target = "shiny gold"

var (
	// ErrMalformed indicates a rule line that could not be parsed.
	ErrMalformed = errors.New("bags: malformed rule")
	// ErrCycle indicates a colour that transitively contains itself.
	ErrCycle = errors.New("bags: containment cycle")
)

// Content is one "n colour" clause of a rule.
type Content struct {
	Count int
	Color string
}

// Rules maps an outer colour to what it must directly contain.
type Rules map[string][]Content

// Parse reads lines like
// "light red bags contain 1 bright white bag, 2 muted yellow bags."
func Parse(lines []string) (Rules, error) {
	rules := Rules{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		outer, inner, ok := strings.Cut(strings.TrimSuffix(line, "."), " bags contain ")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, line)
		}
		rules[outer] = nil
		if inner == "no other bags" {
			continue
		}
		for _, clause := range strings.Split(inner, ", ") {
			c, err := parseContent(clause)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, line, err)
			}
			rules[outer] = append(rules[outer], c)
		}
	}
	return rules, nil
}

func parseContent(clause string) (Content, error) {
	num, rest, ok := strings.Cut(clause, " ")
	if !ok {
		return Content{}, fmt.Errorf("clause %q", clause)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Content{}, err
	}
	color, ok := strings.CutSuffix(rest, " bags")
	if !ok {
		color, ok = strings.CutSuffix(rest, " bag")
	}
	if !ok || color == "" {
		return Content{}, fmt.Errorf("clause %q", clause)
	}
	return Content{Count: n, Color: color}, nil
}

// Colors returns every outer colour in sorted order.
func (r Rules) Colors() []string {
	keys := maps.Keys(r)
	slices.Sort(keys)
	return keys
}

// Holders returns, sorted, every colour that eventually contains target.
func (r Rules) Holders(target string) []string {
	parents := map[string][]string{}
	for outer, contents := range r {
		for _, c := range contents {
			parents[c.Color] = append(parents[c.Color], outer)
		}
	}
	seen := map[string]struct{}{}
	queue := []string{target}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range parents[cur] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			queue = append(queue, p)
		}
	}
	out := maps.Keys(seen)
	slices.Sort(out)
	return out
}

// Inside counts the bags required inside one bag of the given colour.
func (r Rules) Inside(color string) (int, error) {
	memo := map[string]int{}
	visiting := map[string]bool{}
	var walk func(string) (int, error)
	walk = func(c string) (int, error) {
		if n, ok := memo[c]; ok {
			return n, nil
		}
		if visiting[c] {
			return 0, fmt.Errorf("%w: %s", ErrCycle, c)
		}
		visiting[c] = true
		total := 0
		for _, in := range r[c] {
			n, err := walk(in.Color)
			if err != nil {
				return 0, err
			}
			total += in.Count * (1 + n)
		}
		visiting[c] = false
		memo[c] = total
		return total, nil
	}
	return walk(color)
}

// Part1 counts colours that can eventually hold a Target bag.
func Part1(lines []string) (int, error) {
	r, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return len(r.Holders(Target)), nil
}

// Part2 counts the bags inside a Target bag.
func Part2(lines []string) (int, error) {
	r, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return r.Inside(Target)
}
