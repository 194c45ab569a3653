package cpu

import (
	"bytes"
	"iter"
)

// Statement is a single assembled source line.
type Statement struct {
	LineNo    int         // Source line number.
	Pc        int         // Word address of the generated instruction.
	Words     []string    // Parsed source words.
	Code      Instruction // Generated instruction word.
	LinkLabel string      // Unresolved label reference, fixed at link.
}

// Program is an assembled listing: instruction words plus their source
// locations.
type Program struct {
	Statements []Statement
}

// Debug returns the statement at a word address, or nil.
func (prog *Program) Debug(pc uint32) (st *Statement) {
	for n := range prog.Statements {
		if uint32(prog.Statements[n].Pc) == pc {
			st = &prog.Statements[n]
			break
		}
	}

	return
}

// Instructions iterates the program's words in address order.
func (prog *Program) Instructions() iter.Seq2[uint32, Instruction] {
	return func(yield func(pc uint32, ins Instruction) bool) {
		for _, st := range prog.Statements {
			if !yield(uint32(st.Pc), st.Code) {
				return
			}
		}
	}
}

// Words returns the program's instruction words.
func (prog *Program) Words() (words []uint32) {
	words = make([]uint32, 0, len(prog.Statements))
	for _, ins := range prog.Instructions() {
		words = append(words, uint32(ins))
	}

	return
}

// Binary returns the program as a compiled image.
func (prog *Program) Binary() (image []byte) {
	var buf bytes.Buffer
	WriteImage(&buf, prog.Words())
	image = buf.Bytes()

	return
}
