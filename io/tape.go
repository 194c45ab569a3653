package io

import (
	"io"
)

// Tape provides sequential console I/O over a byte stream pair.
// Reads come from Input one byte at a time; writes go to Output
// unbuffered, so emitted bytes are visible before the next read
// blocks. A nil Input reads as end of input; a nil Output discards.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Device = (*Tape)(nil)

// ReadByte reads the next input byte. Any read error, end of input
// included, reports ok false; the machine maps that to its EOF value,
// never to a fault.
func (tc *Tape) ReadByte() (value byte, ok bool) {
	if tc.Input == nil {
		return
	}

	var one [1]byte
	_, err := io.ReadFull(tc.Input, one[:])
	if err != nil {
		return
	}

	value = one[0]
	ok = true
	return
}

// WriteByte emits one byte to the output stream.
func (tc *Tape) WriteByte(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}
