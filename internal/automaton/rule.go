package automaton

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCount is the largest neighbour count a CountSet can hold. The 4-axis
// Moore neighbourhood has 80 cells.
const MaxCount = 127

// CountSet is an immutable set of neighbour counts in [0, MaxCount].
type CountSet [2]uint64

// Counts returns the set holding ns. Values outside [0, MaxCount] are ignored.
func Counts(ns ...int) CountSet {
	var c CountSet
	for _, n := range ns {
		c = c.With(n)
	}
	return c
}

// CountRange returns the set of counts lo..hi inclusive.
func CountRange(lo, hi int) CountSet {
	var c CountSet
	for n := lo; n <= hi; n++ {
		c = c.With(n)
	}
	return c
}

// With returns a copy of c that also holds n.
func (c CountSet) With(n int) CountSet {
	if n < 0 || n > MaxCount {
		return c
	}
	c[n/64] |= 1 << (uint(n) % 64)
	return c
}

// Has reports whether n is in the set.
func (c CountSet) Has(n int) bool {
	if n < 0 || n > MaxCount {
		return false
	}
	return c[n/64]&(1<<(uint(n)%64)) != 0
}

// String lists the counts in ascending order. Counts above 9 are wrapped in
// parentheses so the result stays unambiguous.
func (c CountSet) String() string {
	var sb strings.Builder
	for n := 0; n <= MaxCount; n++ {
		if !c.Has(n) {
			continue
		}
		if n > 9 {
			sb.WriteString("(" + strconv.Itoa(n) + ")")
			continue
		}
		sb.WriteByte(byte('0' + n))
	}
	return sb.String()
}

// Rule decides a cell's next state from its current state and the number of
// active neighbours it has in the current snapshot.
type Rule struct {
	Birth   CountSet
	Survive CountSet
}

// Next returns the state a cell takes in the following snapshot.
func (r Rule) Next(active bool, neighbors int) bool {
	if active {
		return r.Survive.Has(neighbors)
	}
	return r.Birth.Has(neighbors)
}

// String renders r in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survive.String()
}

// LifeRule is Conway's rule: birth on 3, survival on 2 or 3.
func LifeRule() Rule {
	return Rule{Birth: Counts(3), Survive: Counts(2, 3)}
}

// SeatRule fills an empty seat when no neighbour is occupied and empties an
// occupied seat once threshold or more neighbours are occupied.
func SeatRule(threshold int) Rule {
	return Rule{Birth: Counts(0), Survive: CountRange(0, threshold-1)}
}

// ParseRule parses B/S notation such as "B3/S23" or "b0/s0123". Either half may
// be empty ("B3/S").
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Rule{}, fmt.Errorf("%w: %q", ErrRule, s)
	}
	birth, err := parseDigits(parts[0][1:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrRule, s, err)
	}
	survive, err := parseDigits(parts[1][1:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrRule, s, err)
	}
	return Rule{Birth: birth, Survive: survive}, nil
}

func parseDigits(s string) (CountSet, error) {
	var c CountSet
	for _, r := range s {
		if r < '0' || r > '9' {
			return c, fmt.Errorf("unexpected %q", r)
		}
		c = c.With(int(r - '0'))
	}
	return c, nil
}
