package mem

import (
	"errors"

	"github.com/ezrec/um32/translate"
)

var f = translate.From

var (
	// Registry errors
	ErrArrayInactive = errors.New(f("array inactive"))
	ErrOffsetBounds  = errors.New(f("offset out of bounds"))
)

// ErrArray indicates the array identifier an operation faulted on.
type ErrArray struct {
	Id  uint32
	Err error
}

func (err *ErrArray) Error() string {
	return f("array %d %v", err.Id, err.Err)
}

func (err *ErrArray) Unwrap() error {
	return err.Err
}

// ErrOffset indicates the array identifier and offset an access faulted on.
type ErrOffset struct {
	Id     uint32
	Offset uint32
	Err    error
}

func (err *ErrOffset) Error() string {
	return f("array %d offset %d %v", err.Id, err.Offset, err.Err)
}

func (err *ErrOffset) Unwrap() error {
	return err.Err
}
