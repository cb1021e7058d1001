package brainfuck

import (
	"fmt"
)

// TranslationFailure classifies why Translate rejected a source text.
type TranslationFailure int

const (
	UnmatchedLoopStart TranslationFailure = iota
	UnmatchedLoopEnd
)

// TranslationError reports a structurally invalid program. Position is the
// byte offset of the offending bracket in the original source, counting
// comment bytes, so it can be pointed at in an editor.
type TranslationError struct {
	Failure  TranslationFailure
	Position int
}

func (e *TranslationError) Error() string {
	switch e.Failure {
	case UnmatchedLoopStart:
		return fmt.Sprintf("Unmatched OP_WHILE at source position [%d]. Loop is never closed", e.Position)
	case UnmatchedLoopEnd:
		return fmt.Sprintf("Unmatched OP_WHILE_END at source position [%d]. No OP_WHILE is open", e.Position)
	}
	return fmt.Sprintf("Unknown translation failure [%d] at source position [%d]", e.Failure, e.Position)
}

// ExecutionFailure classifies why a run aborted. Only the two byte-stream
// endpoints can fail at runtime; memory and pointer arithmetic wrap and
// cannot fault.
type ExecutionFailure int

const (
	InputFailure ExecutionFailure = iota
	OutputFailure
)

// ExecutionError reports an I/O failure that aborted a run. IP is the tape
// index of the instruction that was executing; Err is the underlying stream
// error.
type ExecutionError struct {
	Failure ExecutionFailure
	IP      int
	Code    OpCode
	Err     error
}

func (e *ExecutionError) Error() string {
	switch e.Failure {
	case InputFailure:
		return fmt.Sprintf("%s at tape index [%d] failed to read input. %v", e.Code.Name(), e.IP, e.Err)
	case OutputFailure:
		return fmt.Sprintf("%s at tape index [%d] failed to write output. %v", e.Code.Name(), e.IP, e.Err)
	}
	return fmt.Sprintf("%s at tape index [%d] failed. %v", e.Code.Name(), e.IP, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
