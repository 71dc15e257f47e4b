// Package docking emulates the port computer's bitmask memory writes.
package docking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Width is the word size of the docking program.
const Width = 36

var (
	// ErrMalformed indicates a line that is neither a mask nor a mem write.
	ErrMalformed = errors.New("docking: malformed line")
	// ErrNoMask indicates a memory write before any mask was set.
	ErrNoMask = errors.New("docking: write before mask")
)

// Mask is a parsed bitmask. Ones and Zeros hold the forced bits, Floating
// the X positions.
type Mask struct {
	Ones, Zeros, Floating uint64
}

// ParseMask reads a Width-character string of 0, 1 and X, most significant
// bit first.
func ParseMask(s string) (Mask, error) {
	if len(s) != Width {
		return Mask{}, fmt.Errorf("%w: mask %q has %d bits", ErrMalformed, s, len(s))
	}
	var m Mask
	for i := 0; i < Width; i++ {
		bit := uint64(1) << (Width - 1 - i)
		switch s[i] {
		case '1':
			m.Ones |= bit
		case '0':
			m.Zeros |= bit
		case 'X':
			m.Floating |= bit
		default:
			return Mask{}, fmt.Errorf("%w: mask %q", ErrMalformed, s)
		}
	}
	return m, nil
}

// Value applies the mask to a value being written.
func (m Mask) Value(v uint64) uint64 {
	return (v | m.Ones) &^ m.Zeros
}

// Addresses calls fn for every address the mask decodes addr into: ones are
// forced, zeros left alone and floating bits take every combination.
func (m Mask) Addresses(addr uint64, fn func(uint64)) {
	base := (addr | m.Ones) &^ m.Floating
	for sub := m.Floating; ; sub = (sub - 1) & m.Floating {
		fn(base | sub)
		if sub == 0 {
			return
		}
	}
}

// Write is the store a decoder performs for one mem line.
type Write func(mem map[uint64]uint64, m Mask, addr, val uint64)

// ValueDecoder masks values.
func ValueDecoder(mem map[uint64]uint64, m Mask, addr, val uint64) {
	mem[addr] = m.Value(val)
}

// AddressDecoder masks addresses.
func AddressDecoder(mem map[uint64]uint64, m Mask, addr, val uint64) {
	m.Addresses(addr, func(a uint64) { mem[a] = val })
}

// Execute runs the program with the given decoder and returns the sum of
// memory.
func Execute(lines []string, write Write) (uint64, error) {
	mem := map[uint64]uint64{}
	var mask *Mask
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhs, rhs, ok := strings.Cut(line, " = ")
		if !ok {
			return 0, fmt.Errorf("%w: line %d %q", ErrMalformed, i+1, line)
		}
		if lhs == "mask" {
			m, err := ParseMask(rhs)
			if err != nil {
				return 0, fmt.Errorf("line %d: %w", i+1, err)
			}
			mask = &m
			continue
		}
		a, pre := strings.CutPrefix(lhs, "mem[")
		a, suf := strings.CutSuffix(a, "]")
		if !pre || !suf {
			return 0, fmt.Errorf("%w: line %d %q", ErrMalformed, i+1, line)
		}
		addr, err := strconv.ParseUint(a, 10, Width)
		if err != nil {
			return 0, fmt.Errorf("%w: line %d %q: %v", ErrMalformed, i+1, line, err)
		}
		val, err := strconv.ParseUint(rhs, 10, Width)
		if err != nil {
			return 0, fmt.Errorf("%w: line %d %q: %v", ErrMalformed, i+1, line, err)
		}
		if mask == nil {
			return 0, fmt.Errorf("%w: line %d", ErrNoMask, i+1)
		}
		write(mem, *mask, addr, val)
	}
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum, nil
}

// Part1 runs the program with ValueDecoder.
func Part1(lines []string) (uint64, error) {
	return Execute(lines, ValueDecoder)
}

// Part2 runs the program with AddressDecoder.
func Part2(lines []string) (uint64, error) {
	return Execute(lines, AddressDecoder)
}
