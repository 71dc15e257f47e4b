// Package arith evaluates the homework expressions whose operators ignore
// the usual precedence.
package arith

import (
	"errors"
	"fmt"
	"slices"
)

// ErrSyntax indicates an expression that cannot be evaluated.
var ErrSyntax = errors.New("arith: syntax error")

// Precedence lists operator levels from loosest to tightest binding.
// Operators on one level associate left to right.
type Precedence [][]byte

var (
	// Flat gives + and * equal precedence.
	Flat = Precedence{{'+', '*'}}
	// AdditionFirst binds + tighter than *.
	AdditionFirst = Precedence{{'*'}, {'+'}}
)

type token struct {
	kind byte // 'n' for numbers, otherwise the symbol itself
	val  int64
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == ' ':
		case c >= '0' && c <= '9':
			var v int64
			for ; i < len(expr) && expr[i] >= '0' && expr[i] <= '9'; i++ {
				v = v*10 + int64(expr[i]-'0')
			}
			i--
			toks = append(toks, token{kind: 'n', val: v})
		case c == '+', c == '*', c == '(', c == ')':
			toks = append(toks, token{kind: c})
		default:
			return nil, fmt.Errorf("%w: %q at %d in %q", ErrSyntax, c, i, expr)
		}
	}
	return toks, nil
}

type parser struct {
	toks []token
	prec Precedence
}

// level parses a left-associative chain of operators from prec[lvl]
// starting at pos and returns its value and the next position.
func (p *parser) level(lvl, pos int) (int64, int, error) {
	if lvl == len(p.prec) {
		return p.operand(pos)
	}
	v, pos, err := p.level(lvl+1, pos)
	if err != nil {
		return 0, pos, err
	}
	for pos < len(p.toks) && slices.Contains(p.prec[lvl], p.toks[pos].kind) {
		op := p.toks[pos].kind
		var rhs int64
		rhs, pos, err = p.level(lvl+1, pos+1)
		if err != nil {
			return 0, pos, err
		}
		if op == '+' {
			v += rhs
		} else {
			v *= rhs
		}
	}
	return v, pos, nil
}

func (p *parser) operand(pos int) (int64, int, error) {
	if pos >= len(p.toks) {
		return 0, pos, fmt.Errorf("%w: unexpected end", ErrSyntax)
	}
	switch t := p.toks[pos]; t.kind {
	case 'n':
		return t.val, pos + 1, nil
	case '(':
		v, next, err := p.level(0, pos+1)
		if err != nil {
			return 0, next, err
		}
		if next >= len(p.toks) || p.toks[next].kind != ')' {
			return 0, next, fmt.Errorf("%w: unclosed parenthesis at token %d", ErrSyntax, pos)
		}
		return v, next + 1, nil
	default:
		return 0, pos, fmt.Errorf("%w: unexpected %q at token %d", ErrSyntax, t.kind, pos)
	}
}

// Eval computes expr under the given operator precedence.
func Eval(expr string, prec Precedence) (int64, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks, prec: prec}
	v, pos, err := p.level(0, 0)
	if err != nil {
		return 0, fmt.Errorf("%w in %q", err, expr)
	}
	if pos != len(toks) {
		return 0, fmt.Errorf("%w: trailing input at token %d in %q", ErrSyntax, pos, expr)
	}
	return v, nil
}

// Sum evaluates every non-blank line and adds the results.
func Sum(lines []string, prec Precedence) (int64, error) {
	var total int64
	for _, line := range lines {
		if line == "" {
			continue
		}
		v, err := Eval(line, prec)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Part1 sums the lines with Flat precedence.
func Part1(lines []string) (int64, error) { return Sum(lines, Flat) }

// Part2 sums the lines with AdditionFirst precedence.
func Part2(lines []string) (int64, error) { return Sum(lines, AdditionFirst) }
