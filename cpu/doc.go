// Package cpu implements the um32 machine and its assembler.
//
// The machine is eight 32-bit registers, a program counter, and a
// registry of word arrays (package mem), driven by a fetch/decode/
// execute loop over the fourteen-opcode instruction set. Array 0 holds
// the running program; the load instruction may replace it wholesale.
//
// The assembler and disassembler convert between the mnemonic form and
// the big-endian binary image format, supporting labels, equates, and
// compile-time expression evaluation.
package cpu
