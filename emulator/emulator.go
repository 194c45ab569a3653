// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/um32/cpu"
	"github.com/ezrec/um32/io"
)

// Emulator state. Cpu + console tape + optional tracer.
type Emulator struct {
	Verbose  bool    // If set, enables verbose logging.
	*cpu.Cpu         // Reference to the machine.
	Tape     io.Tape // Console tape device.
	Tracer   *Tracer // Optional per-cycle trace sink.
}

// NewEmulator creates a new emulator booted from the given program
// words.
func NewEmulator(program []uint32) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(program),
	}

	emu.Cpu.Console = &emu.Tape

	return
}

// Tick performs a single cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	done, err = emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Run executes the program to a halt or a fault. The tracer, when set,
// observes every cycle. On a fault the arena is torn down before the
// error is returned.
func (emu *Emulator) Run() (err error) {
	if emu.Tracer != nil {
		emu.Cpu.Trace = emu.Tracer.Cycle
	}

	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			emu.Cpu.Mem.Reset()
			return
		}
	}

	return
}

// Ticks returns the total cycles executed.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}
