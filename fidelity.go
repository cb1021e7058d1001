package brainfuck

import (
	"github.com/xrash/smetrics"
)

// OutputFidelity scores how closely a program's actual output matches an
// expected reference, 0 to 100. The score is derived from the
// Wagner-Fischer edit distance with substitution weighted as a paired
// insert+delete, normalized by the worst case of rewriting one string into
// the other from scratch.
func OutputFidelity(expected, actual []byte) byte {
	worst := len(expected) + len(actual)
	if worst == 0 {
		return 100
	}
	dist := smetrics.WagnerFischer(string(expected), string(actual), 1, 1, 2)
	if dist >= worst {
		return 0
	}
	return byte((100 * (worst - dist)) / worst)
}
