package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Pc: 0, Words: []string{"imm", "r1", "65"},
				Code: MakeImm(1, 'A')},
			{LineNo: 3, Pc: 1, Words: []string{"halt"},
				Code: MakeABC(OP_HALT, 0, 0, 0)},
		},
	}

	st := prog.Debug(1)
	assert.NotNil(st)
	assert.Equal(3, st.LineNo)

	assert.Nil(prog.Debug(7))
}

func TestProgramBinary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Pc: 0, Code: MakeImm(1, 'A')},
			{LineNo: 2, Pc: 1, Code: MakeABC(OP_HALT, 0, 0, 0)},
		},
	}

	assert.Equal([]byte{
		0xd2, 0x00, 0x00, 0x41,
		0x70, 0x00, 0x00, 0x00,
	}, prog.Binary())
}
