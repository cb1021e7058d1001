package brainfuck

import (
	"testing"
)

func TestOpCodeSymbols(t *testing.T) {
	symbols := map[OpCode]string{
		OP_POINTER_LEFT:  "<",
		OP_POINTER_RIGHT: ">",
		OP_INC:           "+",
		OP_DEC:           "-",
		OP_IN:            ",",
		OP_OUT:           ".",
		OP_WHILE:         "[",
		OP_WHILE_END:     "]",
	}

	for code, symbol := range symbols {
		if code.String() != symbol {
			t.Errorf("%s renders as [%s], expected [%s]", code.Name(), code.String(), symbol)
		}
	}
}

func TestProgramStringStripsComments(t *testing.T) {
	program, err := TranslateString("read one ,\nloop [ emit . read , ]\n")

	if err != nil {
		t.Fatalf("Unexpected failure calling TranslateString. %v", err)
	}

	if program.String() != ",[.,]" {
		t.Errorf("Program renders as [%s], expected [%s]", program.String(), ",[.,]")
	}
}

func TestProgramStringRoundTrip(t *testing.T) {
	source := "++[->+<]>."
	program, err := TranslateString(source)

	if err != nil {
		t.Fatalf("Unexpected failure calling TranslateString. %v", err)
	}

	if program.String() != source {
		t.Errorf("Program renders as [%s], expected [%s]", program.String(), source)
	}
}
