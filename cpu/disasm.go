package cpu

import (
	"fmt"
	"io"
)

// canonical reports whether a word survives a String round trip:
// operand fields the opcode does not use must be zero.
func canonical(ins Instruction) bool {
	op := ins.Op()

	switch op {
	case OP_HALT:
		return ins == MakeABC(op, 0, 0, 0)
	case OP_FREE, OP_OUT, OP_IN:
		return ins == MakeABC(op, 0, 0, ins.C())
	case OP_ALLOC, OP_LOAD:
		return ins == MakeABC(op, 0, ins.B(), ins.C())
	case OP_IMM:
		return true
	case OP_CMOV, OP_INDEX, OP_AMEND, OP_ADD, OP_MUL, OP_DIV, OP_NAND:
		return ins == MakeABC(op, ins.A(), ins.B(), ins.C())
	default:
		return false
	}
}

// Disassemble writes the mnemonic form of an image, one line per word,
// with the address and raw word in a trailing comment. Words that are
// not canonical instructions come out as .word directives, so the
// output always assembles back to the original image.
func Disassemble(w io.Writer, words []uint32) (err error) {
	for pc, word := range words {
		ins := Instruction(word)

		text := ins.String()
		if !canonical(ins) {
			text = fmt.Sprintf(".word %#x", word)
		}

		_, err = fmt.Fprintf(w, "\t%-24s ; %04x %08x\n", text, pc, word)
		if err != nil {
			return
		}
	}

	return
}
