package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doParse(t *testing.T, lines ...string) (prog *Program, err error) {
	t.Helper()

	asm := &Assembler{}
	prog, err = asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	prog, err := doParse(t,
		"; emit a letter, then stop",
		".equ LETTER 'A'",
		"start:",
		"\timm r1 LETTER",
		"\tout r1",
		"\thalt",
	)
	assert.NoError(err)

	assert.Equal([]uint32{
		uint32(MakeImm(1, 'A')),
		uint32(MakeABC(OP_OUT, 0, 0, 1)),
		uint32(MakeABC(OP_HALT, 0, 0, 0)),
	}, prog.Words())

	st := prog.Debug(0)
	assert.NotNil(st)
	assert.Equal(4, st.LineNo)
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	// Forward and backward label references resolve to word
	// addresses.
	prog, err := doParse(t,
		"\timm r2 done",
		"\timm r3 loop",
		"loop:",
		"\tin r1",
		"\tload r0 r2",
		"done:",
		"\thalt",
	)
	assert.NoError(err)

	assert.Equal(MakeImm(2, 4), prog.Statements[0].Code)
	assert.Equal(MakeImm(3, 2), prog.Statements[1].Code)
}

func TestAssemblerExpressions(t *testing.T) {
	assert := assert.New(t)

	prog, err := doParse(t,
		".equ QTY 4",
		"\timm r1 $(QTY * 2 + 1)",
		"\timm r2 $(1 << 20)",
	)
	assert.NoError(err)

	assert.Equal(MakeImm(1, 9), prog.Statements[0].Code)
	assert.Equal(MakeImm(2, 1<<20), prog.Statements[1].Code)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("GREETING", "0x41")

	prog, err := asm.Parse(strings.NewReader("\timm r1 GREETING\n"))
	assert.NoError(err)
	assert.Equal(MakeImm(1, 0x41), prog.Statements[0].Code)

	var found bool
	for key, value := range asm.Defines() {
		if key == "GREETING" {
			assert.Equal("0x41", value)
			found = true
		}
	}
	assert.True(found)
}

func TestAssemblerWord(t *testing.T) {
	assert := assert.New(t)

	prog, err := doParse(t, "\t.word 0xee000000")
	assert.NoError(err)
	assert.Equal([]uint32{0xee000000}, prog.Words())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		lines  []string
		expect error
	}){
		{"equ_syntax", []string{".equ ONLY"}, ErrEquateSyntax},
		{"equ_duplicate", []string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate},
		{"label_duplicate", []string{"a:", "a:", "halt"}, ErrLabelDuplicate},
		{"label_missing", []string{"imm r1 nope"}, ErrLabelMissing("nope")},
		{"opcode_unknown", []string{"jump r1"}, ErrOpcodeUnknown},
		{"operand_count", []string{"add r1 r2"}, ErrOperandCount},
		{"register_invalid", []string{"out r9"}, ErrRegisterInvalid},
		{"immediate_range", []string{"imm r1 0x2000000"}, ErrImmediateRange},
		{"word_syntax", []string{".word 1 2"}, ErrWordSyntax},
	}

	for _, entry := range table {
		_, err := doParse(t, entry.lines...)
		assert.ErrorIs(err, entry.expect, entry.name)

		var syntax ErrSyntax
		assert.ErrorAs(err, &syntax, entry.name)
		assert.NotZero(syntax.LineNo, entry.name)
	}
}

func TestAssemblerRoundTrip(t *testing.T) {
	assert := assert.New(t)

	prog, err := doParse(t,
		"\timm r1 'A'",
		"\tout r1",
		"\tin r2",
		"\talloc r3 r2",
		"\tamend r3 r0 r1",
		"\tindex r4 r3 r0",
		"\tdiv r5 r4 r1",
		"\tnand r5 r5 r5",
		"\tcmov r6 r5 r4",
		"\tmul r6 r6 r6",
		"\tadd r6 r6 r1",
		"\tfree r3",
		"\tload r0 r2",
		"\t.word 0xee123456",
		"\thalt",
	)
	assert.NoError(err)
	words := prog.Words()

	var listing bytes.Buffer
	assert.NoError(Disassemble(&listing, words))

	asm := &Assembler{}
	back, err := asm.Parse(&listing)
	assert.NoError(err)
	assert.Equal(words, back.Words())
}

func TestDisassembleNonCanonical(t *testing.T) {
	assert := assert.New(t)

	// A halt with junk in the unused operand fields must come back
	// as a raw word, preserving the image exactly.
	var listing bytes.Buffer
	assert.NoError(Disassemble(&listing, []uint32{0x700001ff}))
	assert.Contains(listing.String(), ".word 0x700001ff")
}
