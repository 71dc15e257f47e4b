// Package passport validates batch-scanned passport records.
package passport

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"advent2020/internal/input"
)

// ErrMalformed indicates a field not in key:value form.
var ErrMalformed = errors.New("passport: malformed field")

// Passport maps field keys to raw values.
type Passport map[string]string

// Rule validates one field value.
type Rule func(string) bool

// Rules lists every required field with its value rule. The "cid" field is
// optional and unchecked.
var Rules = map[string]Rule{
	"byr": YearBetween(1920, 2002),
	"iyr": YearBetween(2010, 2020),
	"eyr": YearBetween(2020, 2030),
	"hgt": Height,
	"hcl": Match(regexp.MustCompile(`^#[0-9a-f]{6}$`)),
	"ecl": OneOf("amb", "blu", "brn", "gry", "grn", "hzl", "oth"),
	"pid": Match(regexp.MustCompile(`^[0-9]{9}$`)),
}

// YearBetween accepts a four-digit number in [lo, hi].
func YearBetween(lo, hi int) Rule {
	return func(v string) bool {
		return len(v) == 4 && numberBetween(v, lo, hi)
	}
}

// Height accepts 150-193cm or 59-76in.
func Height(v string) bool {
	if n, ok := strings.CutSuffix(v, "cm"); ok {
		return numberBetween(n, 150, 193)
	}
	if n, ok := strings.CutSuffix(v, "in"); ok {
		return numberBetween(n, 59, 76)
	}
	return false
}

// Match accepts values matching re.
func Match(re *regexp.Regexp) Rule {
	return re.MatchString
}

// OneOf accepts exactly one of the listed values.
func OneOf(vals ...string) Rule {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}

func numberBetween(s string, lo, hi int) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

// Parse reads blank-line separated records of space separated key:value
// fields.
func Parse(lines []string) ([]Passport, error) {
	var out []Passport
	for _, group := range input.Groups(lines) {
		p := Passport{}
		for _, line := range group {
			for _, field := range strings.Fields(line) {
				k, v, ok := strings.Cut(field, ":")
				if !ok || k == "" {
					return nil, fmt.Errorf("%w: %q", ErrMalformed, field)
				}
				p[k] = v
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// Complete reports whether every required field is present.
func (p Passport) Complete() bool {
	for k := range Rules {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

// Valid reports whether every required field is present and well formed.
func (p Passport) Valid() bool {
	for k, rule := range Rules {
		v, ok := p[k]
		if !ok || !rule(v) {
			return false
		}
	}
	return true
}

// Part1 counts passports with every required field.
func Part1(lines []string) (int, error) {
	return count(lines, Passport.Complete)
}

// Part2 counts passports whose required fields are all valid.
func Part2(lines []string) (int, error) {
	return count(lines, Passport.Valid)
}

func count(lines []string, ok func(Passport) bool) (int, error) {
	ps, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range ps {
		if ok(p) {
			n++
		}
	}
	return n, nil
}
