package brainfuck

import (
	"testing"
)

func TestNewMemory(t *testing.T) {
	memory := NewMemory()

	if memory == nil {
		t.Fatalf("NewMemory returned nil")
	}

	if len(memory.Cells) != MemorySize {
		t.Errorf("Memory has [%d] cells, expected [%d]", len(memory.Cells), MemorySize)
	}

	if memory.MemoryPointer != 0 {
		t.Errorf("MemoryPointer [%d] is not [0]", memory.MemoryPointer)
	}

	for i, cell := range memory.Cells {
		if cell != 0 {
			t.Fatalf("Memory cell at index [%d] is [%d], expected [0]", i, cell)
		}
	}
}

func TestIncrement(t *testing.T) {
	memory := NewMemory()

	memory.Increment()

	if val := memory.Get(); val != 1 {
		t.Errorf("Increment failed. Value is [%d]. Expected value to be [1]", val)
	}
}

func TestIncrementWrapsToZero(t *testing.T) {
	memory := NewMemory()
	memory.Put(255)

	memory.Increment()

	if val := memory.Get(); val != 0 {
		t.Errorf("Incrementing [255] must wrap to [0], got [%d]", val)
	}
}

func TestDecrement(t *testing.T) {
	memory := NewMemory()
	memory.Put(2)

	memory.Decrement()

	if val := memory.Get(); val != 1 {
		t.Errorf("Decrement failed. Value is [%d]. Expected value to be [1]", val)
	}
}

func TestDecrementWrapsToMax(t *testing.T) {
	memory := NewMemory()

	memory.Decrement()

	if val := memory.Get(); val != 255 {
		t.Errorf("Decrementing [0] must wrap to [255], got [%d]", val)
	}
}

func TestMovePointerRight(t *testing.T) {
	memory := NewMemory()

	memory.MovePointerRight()

	if memory.MemoryPointer != 1 {
		t.Errorf("Expected MemoryPointer to be [1] but was [%d]", memory.MemoryPointer)
	}
}

func TestPointerRotatesOnBounds(t *testing.T) {
	memory := NewMemory()

	memory.MovePointerLeft()

	if memory.MemoryPointer != MemorySize-1 {
		t.Errorf("Moving left from [0] must rotate to [%d], got [%d]", MemorySize-1, memory.MemoryPointer)
	}

	memory.MovePointerRight()

	if memory.MemoryPointer != 0 {
		t.Errorf("Moving right from [%d] must rotate to [0], got [%d]", MemorySize-1, memory.MemoryPointer)
	}
}

func TestPutGet(t *testing.T) {
	memory := NewMemory()

	memory.Put(0x8d)

	if val := memory.Get(); val != 0x8d {
		t.Errorf("Value [%d] was not stored, got [%d]", 0x8d, val)
	}
}

func TestReset(t *testing.T) {
	memory := NewMemory()
	memory.Put(42)
	memory.MovePointerRight()
	memory.Put(17)

	memory.Reset()

	if memory.MemoryPointer != 0 {
		t.Errorf("Reset must rewind MemoryPointer, got [%d]", memory.MemoryPointer)
	}

	if memory.Cells[0] != 0 || memory.Cells[1] != 0 {
		t.Errorf("Reset must zero cells, got [%d] and [%d]", memory.Cells[0], memory.Cells[1])
	}
}
