package emulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/um32/cpu"
)

// Tracer emits one textual record per executed cycle: program counter,
// raw word, decoded form, and the register deltas of the cycle. It is
// a pure observer; execution semantics and ordering are unaffected.
type Tracer struct {
	W     io.Writer
	Limit uint32 // When nonzero, stop tracing once the pc reaches it.

	stopped bool
}

// Cycle is the cpu trace hook.
func (tr *Tracer) Cycle(pc uint32, ins cpu.Instruction, before, after [8]uint32) {
	if tr.stopped || tr.W == nil {
		return
	}

	if tr.Limit != 0 && pc >= tr.Limit {
		tr.stopped = true
		return
	}

	var deltas strings.Builder
	for n := range after {
		if before[n] != after[n] {
			fmt.Fprintf(&deltas, " r%d=%#x", n, after[n])
		}
	}

	fmt.Fprintf(tr.W, "%08x %08x %v%v\n", pc, uint32(ins), ins, deltas.String())
}
