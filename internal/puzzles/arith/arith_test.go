package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []struct {
	expr                string
	flat, additionFirst int64
}{
	{"1 + 2 * 3 + 4 * 5 + 6", 71, 231},
	{"1 + (2 * 3) + (4 * (5 + 6))", 51, 51},
	{"2 * 3 + (4 * 5)", 26, 46},
	{"5 + (8 * 3 + 9 + 3 * 4 * 3)", 437, 1445},
	{"5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))", 12240, 669060},
	{"((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2", 13632, 23340},
}

func TestEval(t *testing.T) {
	for _, s := range samples {
		got, err := Eval(s.expr, Flat)
		require.NoError(t, err, s.expr)
		assert.Equal(t, s.flat, got, "flat: %s", s.expr)

		got, err = Eval(s.expr, AdditionFirst)
		require.NoError(t, err, s.expr)
		assert.Equal(t, s.additionFirst, got, "addition first: %s", s.expr)
	}
}

func TestParts(t *testing.T) {
	lines := []string{"2 * 3 + (4 * 5)", "", "1 + 2 * 3 + 4 * 5 + 6"}
	got, err := Part1(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(26+71), got)

	got, err = Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, int64(46+231), got)
}

func TestMultiDigit(t *testing.T) {
	got, err := Eval("12*(34+5)", Flat)
	require.NoError(t, err)
	assert.Equal(t, int64(468), got)
}

func TestSyntaxErrors(t *testing.T) {
	for _, bad := range []string{"", "1 +", "(1 + 2", "1 + 2)", "1 - 2", "* 3", "1 2", "()"} {
		_, err := Eval(bad, AdditionFirst)
		assert.ErrorIs(t, err, ErrSyntax, bad)
	}
}
