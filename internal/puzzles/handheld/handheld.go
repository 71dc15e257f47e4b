// Package handheld runs the boot code of the handheld game console.
package handheld

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed indicates an instruction line that could not be parsed.
var ErrMalformed = errors.New("handheld: malformed instruction")

// Op is an instruction opcode.
type Op string

const (
	Acc Op = "acc"
	Jmp Op = "jmp"
	Nop Op = "nop"
)

// Instr is one decoded instruction.
type Instr struct {
	Op  Op
	Arg int
}

// Parse decodes lines like "acc +1".
func Parse(lines []string) ([]Instr, error) {
	var prog []Instr
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		op, arg, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrMalformed, i+1, line)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformed, i+1, line, err)
		}
		switch Op(op) {
		case Acc, Jmp, Nop:
		default:
			return nil, fmt.Errorf("%w: line %d: unknown op %q", ErrMalformed, i+1, op)
		}
		prog = append(prog, Instr{Op: Op(op), Arg: n})
	}
	return prog, nil
}

// Run executes prog until an instruction is about to run a second time or
// the program counter leaves the program. It returns the accumulator and
// whether the program terminated by stepping just past its last
// instruction.
func Run(prog []Instr) (acc int, terminated bool) {
	visited := make([]bool, len(prog))
	pc := 0
	for pc >= 0 && pc < len(prog) && !visited[pc] {
		visited[pc] = true
		switch in := prog[pc]; in.Op {
		case Acc:
			acc += in.Arg
			pc++
		case Jmp:
			pc += in.Arg
		default:
			pc++
		}
	}
	return acc, pc == len(prog)
}

// Repair flips one jmp to nop or nop to jmp so the program terminates and
// returns the resulting accumulator. ok is false when no single flip works.
func Repair(prog []Instr) (acc int, ok bool) {
	patched := make([]Instr, len(prog))
	copy(patched, prog)
	for i, in := range prog {
		switch in.Op {
		case Jmp:
			patched[i].Op = Nop
		case Nop:
			patched[i].Op = Jmp
		default:
			continue
		}
		if acc, done := Run(patched); done {
			return acc, true
		}
		patched[i] = in
	}
	return 0, false
}

// Part1 returns the accumulator just before any instruction repeats.
func Part1(lines []string) (int, error) {
	prog, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	acc, _ := Run(prog)
	return acc, nil
}

// Part2 returns the accumulator of the repaired, terminating program.
func Part2(lines []string) (int, bool, error) {
	prog, err := Parse(lines)
	if err != nil {
		return 0, false, err
	}
	acc, ok := Repair(prog)
	return acc, ok, nil
}
