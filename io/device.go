// Package io provides the console byte devices for the um32 emulator.
// The machine performs all I/O one byte at a time: the in instruction
// consumes a byte from the device and the out instruction emits one.
package io

// Device defines the interface for um32 console devices.
type Device interface {
	// ReadByte returns the next input byte; ok is false at end of
	// input.
	ReadByte() (value byte, ok bool)
	// WriteByte emits a single byte. The byte must be visible before
	// the next ReadByte can block.
	WriteByte(value byte) error
}
