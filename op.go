package brainfuck

import (
	"fmt"
	"strings"
)

// The OPs for Brainfuck. The eight symbols from the language definition map
// 1:1 onto these codes. OP_WHILE and OP_WHILE_END are the only codes that
// carry a payload: the index of their matching counterpart inside the
// Program, resolved once by Translate so the machine can redirect the
// instruction pointer in O(1) instead of rescanning the tape for brackets.

type OpCode byte

const (
	OP_POINTER_LEFT OpCode = iota
	OP_POINTER_RIGHT
	OP_INC
	OP_DEC
	OP_IN
	OP_OUT
	OP_WHILE
	OP_WHILE_END
)

// Instruction is one executable unit on the tape. Target is only meaningful
// for OP_WHILE and OP_WHILE_END.
type Instruction struct {
	Code   OpCode
	Target int
}

// Program is the translator's output. It is never mutated after translation,
// so a single Program is safe to hand to any number of machines.
type Program []Instruction

// String returns the source symbol for the code.
func (o OpCode) String() string {
	switch o {
	case OP_POINTER_LEFT:
		return "<"
	case OP_POINTER_RIGHT:
		return ">"
	case OP_INC:
		return "+"
	case OP_DEC:
		return "-"
	case OP_IN:
		return ","
	case OP_OUT:
		return "."
	case OP_WHILE:
		return "["
	case OP_WHILE_END:
		return "]"
	}
	panic(fmt.Sprintf("Unknown OP [%d] encountered!", byte(o)))
}

// Name returns the constant name of the code for diagnostics.
func (o OpCode) Name() string {
	switch o {
	case OP_POINTER_LEFT:
		return "OP_POINTER_LEFT"
	case OP_POINTER_RIGHT:
		return "OP_POINTER_RIGHT"
	case OP_INC:
		return "OP_INC"
	case OP_DEC:
		return "OP_DEC"
	case OP_IN:
		return "OP_IN"
	case OP_OUT:
		return "OP_OUT"
	case OP_WHILE:
		return "OP_WHILE"
	case OP_WHILE_END:
		return "OP_WHILE_END"
	}
	panic(fmt.Sprintf("Unknown OP [%d] encountered!", byte(o)))
}

// String renders the program back to canonical source. Comments from the
// original source are gone; only the eight significant symbols remain.
func (p Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, ins := range p {
		sb.WriteString(ins.Code.String())
	}
	return sb.String()
}
