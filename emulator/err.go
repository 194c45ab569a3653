package emulator

import (
	"github.com/ezrec/um32/translate"
)

var f = translate.From

// ErrRuntime indicates the cycle location of a runtime fault.
type ErrRuntime struct {
	Pc  uint32
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %08x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
