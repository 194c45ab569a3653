package cpu

import (
	"errors"
	"log"

	"github.com/ezrec/um32/io"
	"github.com/ezrec/um32/mem"
)

// Device is a console byte device.
type Device io.Device

// TraceFunc observes one executed cycle: the pc and raw word fetched,
// and the register bank before and after execution. It is purely
// observational; the engine consumes nothing from it.
type TraceFunc func(pc uint32, ins Instruction, before, after [8]uint32)

// Cpu is the um32 execution engine.
//
// All state is owned by the one execution context for the lifetime of
// the run; there is no concurrent access to the registers or the arena.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [8]uint32  // Register bank, zero at boot.
	Pc       uint32     // Program counter into array 0.
	Mem      *mem.Arena // Array registry.
	Console  Device     // Byte device for the in/out instructions.
	Trace    TraceFunc  // Optional per-cycle observer.

	Ticks int // Executed cycle counter.
}

// NewCpu creates a machine booted from the given program words.
// The machine takes ownership of the slice as array 0.
func NewCpu(program []uint32) (cpu *Cpu) {
	cpu = &Cpu{
		Mem:     mem.NewArena(program),
		Console: &io.Tape{},
	}

	return
}

// Step executes a single machine cycle. done is true after a halt.
// Any fault is fatal to the run; the caller tears down via Run or
// Mem.Reset.
func (cpu *Cpu) Step() (done bool, err error) {
	if cpu.Pc >= cpu.Mem.ProgramLen() {
		err = ErrPcBounds
		return
	}

	ins := Instruction(cpu.Mem.ProgramWord(cpu.Pc))

	pc := cpu.Pc
	before := cpu.Register

	done, err = cpu.execute(ins)
	cpu.Ticks++

	if cpu.Trace != nil {
		cpu.Trace(pc, ins, before, cpu.Register)
	}

	return
}

// Run steps the machine until a halt or a fault. On a fault every
// array's storage is released before the error is returned.
func (cpu *Cpu) Run() (err error) {
	var done bool
	for !done {
		done, err = cpu.Step()
		if err != nil {
			cpu.Mem.Reset()
			return
		}
	}

	return
}

// execute dispatches a single decoded instruction. The pc advances by
// one except for load, which sets it directly, and halt, which
// terminates.
func (cpu *Cpu) execute(ins Instruction) (done bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(ins), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %08x: %v", cpu.Pc, ins)
	}

	op := ins.Op()

	// Immediate layout; every other opcode decodes A, B, C.
	if op == OP_IMM {
		cpu.Register[ins.ImmReg()] = ins.Immediate()
		cpu.Pc++
		return
	}

	a, b, c := ins.A(), ins.B(), ins.C()
	reg := &cpu.Register

	switch op {
	case OP_CMOV:
		if reg[c] != 0 {
			reg[a] = reg[b]
		}
	case OP_INDEX:
		var value uint32
		value, err = cpu.Mem.Read(reg[b], reg[c])
		if err != nil {
			return
		}
		reg[a] = value
	case OP_AMEND:
		err = cpu.Mem.Write(reg[a], reg[b], reg[c])
		if err != nil {
			return
		}
	case OP_ADD:
		reg[a] = reg[b] + reg[c]
	case OP_MUL:
		reg[a] = reg[b] * reg[c]
	case OP_DIV:
		if reg[c] == 0 {
			err = ErrDivideByZero
			return
		}
		reg[a] = reg[b] / reg[c]
	case OP_NAND:
		reg[a] = ^(reg[b] & reg[c])
	case OP_HALT:
		cpu.Mem.Reset()
		done = true
		return
	case OP_ALLOC:
		reg[b] = cpu.Mem.Allocate(reg[c])
	case OP_FREE:
		err = cpu.Mem.Free(reg[c])
		if err != nil {
			return
		}
	case OP_OUT:
		if reg[c] > 255 {
			err = errors.Join(ErrOutputRange, ErrValue(reg[c]))
			return
		}
		err = cpu.Console.WriteByte(byte(reg[c]))
		if err != nil {
			return
		}
	case OP_IN:
		value, ok := cpu.Console.ReadByte()
		if ok {
			reg[c] = uint32(value)
		} else {
			reg[c] = EOF
		}
	case OP_LOAD:
		err = cpu.Mem.ReplaceProgram(reg[b])
		if err != nil {
			return
		}
		// The one instruction that sets the pc itself; no
		// auto-increment.
		cpu.Pc = reg[c]
		return
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Pc++
	return
}
