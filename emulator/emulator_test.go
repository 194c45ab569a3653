package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/um32/cpu"
)

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]uint32{
		uint32(cpu.MakeImm(1, 'A')),
		uint32(cpu.MakeABC(cpu.OP_OUT, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_HALT, 0, 0, 0)),
	})

	var output bytes.Buffer
	emu.Tape.Output = &output

	err := emu.Run()
	assert.NoError(err)
	assert.Equal("A", output.String())
	assert.Equal(3, emu.Ticks())
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]uint32{
		uint32(cpu.MakeABC(cpu.OP_IN, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_OUT, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_IN, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_OUT, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_HALT, 0, 0, 0)),
	})

	var output bytes.Buffer
	emu.Tape.Input = strings.NewReader("hi")
	emu.Tape.Output = &output

	err := emu.Run()
	assert.NoError(err)
	assert.Equal("hi", output.String())
}

func TestEmulatorInputEof(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]uint32{
		uint32(cpu.MakeABC(cpu.OP_IN, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_HALT, 0, 0, 0)),
	})

	err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.EOF, emu.Cpu.Register[1])
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]uint32{
		uint32(cpu.MakeImm(1, 1)),
		0xe0000000,
	})

	err := emu.Run()
	assert.Error(err)
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)

	var rte *ErrRuntime
	assert.ErrorAs(err, &rte)
	assert.Equal(uint32(1), rte.Pc)

	// A fault tears down every array.
	assert.Equal(uint32(0), emu.Cpu.Mem.ProgramLen())
}

func TestEmulatorTrace(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]uint32{
		uint32(cpu.MakeImm(1, 'A')),
		uint32(cpu.MakeABC(cpu.OP_OUT, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_HALT, 0, 0, 0)),
	})

	var output, trace bytes.Buffer
	emu.Tape.Output = &output
	emu.Tracer = &Tracer{W: &trace}

	err := emu.Run()
	assert.NoError(err)

	lines := strings.Split(strings.TrimRight(trace.String(), "\n"), "\n")
	assert.Len(lines, 3)
	assert.Equal("00000000 d2000041 imm r1 0x41 r1=0x41", lines[0])
	assert.Equal("00000001 a0000001 out r1", lines[1])
	assert.Equal("00000002 70000000 halt", lines[2])
}

func TestEmulatorTraceLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]uint32{
		uint32(cpu.MakeImm(1, 'A')),
		uint32(cpu.MakeABC(cpu.OP_OUT, 0, 0, 1)),
		uint32(cpu.MakeABC(cpu.OP_HALT, 0, 0, 0)),
	})

	var trace bytes.Buffer
	emu.Tape.Output = &bytes.Buffer{}
	emu.Tracer = &Tracer{W: &trace, Limit: 2}

	err := emu.Run()
	assert.NoError(err)

	lines := strings.Split(strings.TrimRight(trace.String(), "\n"), "\n")
	assert.Len(lines, 2)
}
