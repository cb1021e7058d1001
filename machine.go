package brainfuck

import (
	"fmt"
	"io"
	"os"
)

// MachineConfig wires a machine to its two byte-stream collaborators. A nil
// config or a nil field falls back to the process standard streams.
type MachineConfig struct {
	Input  io.Reader
	Output io.Writer
}

// Machine executes a translated Program against cyclic memory and two byte
// streams. All mutable state (memory, both pointers, the instruction
// counter) belongs to exactly one machine; the Program is read-only and may
// be shared between machines.
type Machine struct {
	Program            Program
	InstructionPointer int
	Memory             *Memory
	InstructionCount   uint

	input  io.Reader
	output io.Writer
}

func NewMachine(program Program, config *MachineConfig) *Machine {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout
	if config != nil {
		if config.Input != nil {
			input = config.Input
		}
		if config.Output != nil {
			output = config.Output
		}
	}
	return &Machine{
		Program: program,
		Memory:  NewMemory(),
		input:   input,
		output:  output,
	}
}

// Reset rewinds the machine for a fresh run of the same Program.
func (m *Machine) Reset() {
	m.Memory.Reset()
	m.InstructionPointer = 0
	m.InstructionCount = 0
}

// LoadProgram swaps in a new Program and resets the machine.
func (m *Machine) LoadProgram(program Program) {
	m.Program = program
	m.Reset()
}

// Run executes the Program from the current instruction pointer until the
// pointer passes the end of the tape. The only failure modes are the two
// byte-stream endpoints; see the OP_IN and OP_OUT handling below. A program
// that loops forever runs forever. Callers wanting a budget must impose it
// from outside.
func (m *Machine) Run() error {
	for m.InstructionPointer < len(m.Program) {
		ins := m.Program[m.InstructionPointer]
		m.InstructionCount++

		switch ins.Code {
		case OP_INC:
			m.Memory.Increment()
			m.InstructionPointer++
		case OP_DEC:
			m.Memory.Decrement()
			m.InstructionPointer++
		case OP_POINTER_RIGHT:
			m.Memory.MovePointerRight()
			m.InstructionPointer++
		case OP_POINTER_LEFT:
			m.Memory.MovePointerLeft()
			m.InstructionPointer++
		case OP_IN:
			if err := m.read(); err != nil {
				return err
			}
			m.InstructionPointer++
		case OP_OUT:
			if err := m.write(); err != nil {
				return err
			}
			m.InstructionPointer++
		case OP_WHILE:
			if m.Memory.Get() == 0 {
				m.InstructionPointer = ins.Target + 1
			} else {
				m.InstructionPointer++
			}
		case OP_WHILE_END:
			if m.Memory.Get() != 0 {
				m.InstructionPointer = ins.Target + 1
			} else {
				m.InstructionPointer++
			}
		default:
			panic(fmt.Sprintf("Unknown OP [%d] encountered at tape index [%d]!", byte(ins.Code), m.InstructionPointer))
		}
	}

	return nil
}

// read pulls the next byte from the input stream into the current cell.
// Exhausted input stores 0 into the cell. This is the documented end-of-input
// policy: it lets `,[.,]` drain its input and halt. Only a transport-level
// read error aborts the run.
func (m *Machine) read() error {
	var buf [1]byte
	for {
		n, err := m.input.Read(buf[:])
		if n > 0 {
			m.Memory.Put(buf[0])
			return nil
		}
		if err == io.EOF {
			m.Memory.Put(0)
			return nil
		}
		if err != nil {
			return &ExecutionError{Failure: InputFailure, IP: m.InstructionPointer, Code: OP_IN, Err: err}
		}
	}
}

// write pushes the current cell to the output stream.
func (m *Machine) write() error {
	buf := [1]byte{m.Memory.Get()}
	if _, err := m.output.Write(buf[:]); err != nil {
		return &ExecutionError{Failure: OutputFailure, IP: m.InstructionPointer, Code: OP_OUT, Err: err}
	}
	return nil
}
