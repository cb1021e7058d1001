package brainfuck

// MemorySize is the number of cells on the machine's memory tape, from the
// classic language definition.
const MemorySize = 30000

// Memory is the machine's operative memory: MemorySize unsigned byte cells
// addressed cyclically. Moving the pointer past either end wraps to the
// opposite end, and cell arithmetic wraps modulo 256, so no memory operation
// can fail.
type Memory struct {
	Cells         []uint8
	MemoryPointer int
}

func NewMemory() *Memory {
	return &Memory{
		Cells:         make([]uint8, MemorySize),
		MemoryPointer: 0,
	}
}

// Reset zeroes every cell and rewinds the pointer.
func (m *Memory) Reset() {
	for i := range m.Cells {
		m.Cells[i] = 0
	}
	m.MemoryPointer = 0
}

// Get returns the value of the cell under the pointer.
func (m *Memory) Get() uint8 {
	return m.Cells[m.MemoryPointer]
}

// Put stores a value into the cell under the pointer.
func (m *Memory) Put(v uint8) {
	m.Cells[m.MemoryPointer] = v
}

// Increment adds one to the current cell, 255 wraps to 0.
func (m *Memory) Increment() {
	m.Cells[m.MemoryPointer]++
}

// Decrement subtracts one from the current cell, 0 wraps to 255.
func (m *Memory) Decrement() {
	m.Cells[m.MemoryPointer]--
}

// MovePointerRight moves the pointer one cell right, wrapping from the last
// cell back to cell 0.
func (m *Memory) MovePointerRight() {
	m.MemoryPointer++
	if m.MemoryPointer == len(m.Cells) {
		m.MemoryPointer = 0
	}
}

// MovePointerLeft moves the pointer one cell left, wrapping from cell 0 to
// the last cell.
func (m *Memory) MovePointerLeft() {
	if m.MemoryPointer == 0 {
		m.MemoryPointer = len(m.Cells)
	}
	m.MemoryPointer--
}
