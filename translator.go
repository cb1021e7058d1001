package brainfuck

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Translate reads brainfuck source to the end and produces an executable
// Program. Every byte that is not one of the eight significant symbols is a
// comment and emits nothing. Loop brackets are resolved in the same pass
// with an explicit index stack: `[` pushes its instruction index, `]` pops
// the innermost open `[` and the two instructions receive each other's index
// as their jump Target.
//
// Translation fails on unbalanced brackets. A `]` with nothing open fails
// immediately; a `[` that is still open when the source ends fails after the
// scan, reporting the innermost unclosed bracket. Source with no significant
// symbols at all translates to a valid empty Program.
func Translate(r io.Reader) (Program, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read program source")
	}

	var program Program
	var offsets []int
	var whileStack []int

	for pos, b := range source {
		switch b {
		case '+':
			program = append(program, Instruction{Code: OP_INC})
		case '-':
			program = append(program, Instruction{Code: OP_DEC})
		case '>':
			program = append(program, Instruction{Code: OP_POINTER_RIGHT})
		case '<':
			program = append(program, Instruction{Code: OP_POINTER_LEFT})
		case ',':
			program = append(program, Instruction{Code: OP_IN})
		case '.':
			program = append(program, Instruction{Code: OP_OUT})
		case '[':
			whileStack = append(whileStack, len(program))
			program = append(program, Instruction{Code: OP_WHILE})
		case ']':
			if len(whileStack) == 0 {
				return nil, &TranslationError{Failure: UnmatchedLoopEnd, Position: pos}
			}
			open := whileStack[len(whileStack)-1]
			whileStack = whileStack[:len(whileStack)-1]
			program[open].Target = len(program)
			program = append(program, Instruction{Code: OP_WHILE_END, Target: open})
		default:
			continue
		}
		offsets = append(offsets, pos)
	}

	if len(whileStack) > 0 {
		open := whileStack[len(whileStack)-1]
		return nil, &TranslationError{Failure: UnmatchedLoopStart, Position: offsets[open]}
	}

	return program, nil
}

// TranslateString translates source held in memory.
func TranslateString(source string) (Program, error) {
	return Translate(strings.NewReader(source))
}
