package cpu

import (
	"fmt"
)

// Opcode is the operation selector in bits 28-31 of a machine word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_CMOV  = Opcode(0)  // cmov
	OP_INDEX = Opcode(1)  // index
	OP_AMEND = Opcode(2)  // amend
	OP_ADD   = Opcode(3)  // add
	OP_MUL   = Opcode(4)  // mul
	OP_DIV   = Opcode(5)  // div
	OP_NAND  = Opcode(6)  // nand
	OP_HALT  = Opcode(7)  // halt
	OP_ALLOC = Opcode(8)  // alloc
	OP_FREE  = Opcode(9)  // free
	OP_OUT   = Opcode(10) // out
	OP_IN    = Opcode(11) // in
	OP_LOAD  = Opcode(12) // load
	OP_IMM   = Opcode(13) // imm
)

const (
	// EOF is the register value an input instruction stores at end of
	// input.
	EOF = uint32(0xffffffff)

	// IMM_LIMIT is one past the largest encodable load-immediate value.
	IMM_LIMIT = uint32(1) << 25
)

// Instruction is a single 32-bit machine word.
//
// All opcodes except imm use the standard layout: register indexes
// A in bits 6-8, B in bits 3-5, C in bits 0-2. The imm opcode uses the
// immediate layout: destination register in bits 25-27 and a 25-bit
// value in bits 0-24.
type Instruction uint32

// Op returns the opcode from bits 28-31.
func (ins Instruction) Op() Opcode {
	return Opcode(ins >> 28)
}

// A returns the standard-layout A register index, bits 6-8.
func (ins Instruction) A() int {
	return int((ins >> 6) & 7)
}

// B returns the standard-layout B register index, bits 3-5.
func (ins Instruction) B() int {
	return int((ins >> 3) & 7)
}

// C returns the standard-layout C register index, bits 0-2.
func (ins Instruction) C() int {
	return int(ins & 7)
}

// ImmReg returns the immediate-layout destination register, bits 25-27.
func (ins Instruction) ImmReg() int {
	return int((ins >> 25) & 7)
}

// Immediate returns the 25-bit immediate value, bits 0-24.
func (ins Instruction) Immediate() uint32 {
	return uint32(ins) & (IMM_LIMIT - 1)
}

// MakeABC builds a standard-layout instruction.
func MakeABC(op Opcode, a, b, c int) Instruction {
	return Instruction(uint32(op)<<28 | uint32(a&7)<<6 | uint32(b&7)<<3 | uint32(c&7))
}

// MakeImm builds a load-immediate instruction.
func MakeImm(a int, value uint32) Instruction {
	return Instruction(uint32(OP_IMM)<<28 | uint32(a&7)<<25 | (value & (IMM_LIMIT - 1)))
}

// String returns the assembly language representation of this
// instruction. Operand count follows the opcode: unused fields are not
// printed.
func (ins Instruction) String() (out string) {
	op := ins.Op()

	switch op {
	case OP_HALT:
		out = op.String()
	case OP_FREE, OP_OUT, OP_IN:
		out = fmt.Sprintf("%v r%d", op, ins.C())
	case OP_ALLOC, OP_LOAD:
		out = fmt.Sprintf("%v r%d r%d", op, ins.B(), ins.C())
	case OP_IMM:
		out = fmt.Sprintf("%v r%d %#x", op, ins.ImmReg(), ins.Immediate())
	case OP_CMOV, OP_INDEX, OP_AMEND, OP_ADD, OP_MUL, OP_DIV, OP_NAND:
		out = fmt.Sprintf("%v r%d r%d r%d", op, ins.A(), ins.B(), ins.C())
	default:
		out = fmt.Sprintf("%v", op)
	}

	return
}
