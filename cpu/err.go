package cpu

import (
	"errors"

	"github.com/ezrec/um32/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageEmpty  = errors.New(f("image empty"))
	ErrImageRagged = errors.New(f("image not a multiple of 4 bytes"))
	ErrImageShort  = errors.New(f("image short read"))

	// Execution errors
	ErrPcBounds      = errors.New(f("pc out of bounds"))
	ErrOpcodeInvalid = errors.New(f("invalid opcode"))
	ErrDivideByZero  = errors.New(f("divide by zero"))
	ErrOutputRange   = errors.New(f("output value out of range"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrWordSyntax      = errors.New(f(".word syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrOperandCount    = errors.New(f("operand count"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrImmediateRange  = errors.New(f("immediate out of range"))
)

// ErrInstruction carries the raw word an execution fault occurred on.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("instruction 0x%08x %v", uint32(ei), Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrValue carries the offending register value of a range fault.
type ErrValue uint32

func (ev ErrValue) Error() string {
	return f("value %d", uint32(ev))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
