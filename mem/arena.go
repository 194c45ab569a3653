package mem

import (
	"log"
	"slices"
)

// Array is a single heap array slot in the arena.
type Array struct {
	Data   []uint32
	Active bool
}

// Arena owns every array of the machine, keyed by identifier.
// Slot 0 holds the running program and is always active.
type Arena struct {
	Verbose bool // Set to enable verbose logging.

	arrays []Array
	free   Stack
}

// NewArena creates an arena whose program array holds the given words.
// The arena takes ownership of the slice.
func NewArena(program []uint32) (ar *Arena) {
	ar = &Arena{
		arrays: []Array{{Data: program, Active: true}},
	}

	return
}

// lookup resolves an identifier to its active slot.
func (ar *Arena) lookup(id uint32) (arr *Array, err error) {
	if id >= uint32(len(ar.arrays)) || !ar.arrays[id].Active {
		err = &ErrArray{Id: id, Err: ErrArrayInactive}
		return
	}

	arr = &ar.arrays[id]
	return
}

// Active reports whether an identifier maps to a live array.
func (ar *Arena) Active(id uint32) bool {
	return id < uint32(len(ar.arrays)) && ar.arrays[id].Active
}

// Allocate creates a zero-filled array of the requested length and
// returns its identifier. The most recently freed identifier is reused
// first; otherwise the next unused one is taken.
func (ar *Arena) Allocate(length uint32) (id uint32) {
	var ok bool
	id, ok = ar.free.Pop()
	if !ok {
		id = uint32(len(ar.arrays))
		ar.arrays = append(ar.arrays, Array{})
	}

	// Identifier 0 is never free-listed, and the append path starts
	// past it.
	if id == 0 {
		panic("mem: allocation produced identifier 0")
	}

	ar.arrays[id] = Array{
		Data:   make([]uint32, length),
		Active: true,
	}

	if ar.Verbose {
		log.Printf("mem: alloc id %d len %d", id, length)
	}

	return
}

// Free releases an array's storage and recycles its identifier.
// Identifier 0 and inactive identifiers fault.
func (ar *Arena) Free(id uint32) (err error) {
	if id == 0 || !ar.Active(id) {
		err = &ErrArray{Id: id, Err: ErrArrayInactive}
		return
	}

	ar.arrays[id] = Array{}
	ar.free.Push(id)

	if ar.Verbose {
		log.Printf("mem: free id %d", id)
	}

	return
}

// Read returns the word at offset in the identified array.
func (ar *Arena) Read(id uint32, offset uint32) (value uint32, err error) {
	arr, err := ar.lookup(id)
	if err != nil {
		return
	}

	if offset >= uint32(len(arr.Data)) {
		err = &ErrOffset{Id: id, Offset: offset, Err: ErrOffsetBounds}
		return
	}

	value = arr.Data[offset]
	return
}

// Write replaces the word at offset in the identified array.
func (ar *Arena) Write(id uint32, offset uint32, value uint32) (err error) {
	arr, err := ar.lookup(id)
	if err != nil {
		return
	}

	if offset >= uint32(len(arr.Data)) {
		err = &ErrOffset{Id: id, Offset: offset, Err: ErrOffsetBounds}
		return
	}

	arr.Data[offset] = value
	return
}

// ReplaceProgram duplicates the identified array into the program slot.
// The copy is deep: later mutation of the source does not reach the
// program, and vice versa. Identifier 0 is a no-op, keeping the current
// program.
func (ar *Arena) ReplaceProgram(id uint32) (err error) {
	if id == 0 {
		return
	}

	arr, err := ar.lookup(id)
	if err != nil {
		return
	}

	ar.arrays[0].Data = slices.Clone(arr.Data)

	if ar.Verbose {
		log.Printf("mem: program replaced from id %d len %d", id, len(arr.Data))
	}

	return
}

// ProgramLen returns the current length of the program array.
func (ar *Arena) ProgramLen() uint32 {
	return uint32(len(ar.arrays[0].Data))
}

// ProgramWord returns the program word at pc. The caller checks pc
// against ProgramLen first.
func (ar *Arena) ProgramWord(pc uint32) uint32 {
	return ar.arrays[0].Data[pc]
}

// Reset releases every array's storage. The program slot stays active,
// empty, preserving the identifier 0 invariant.
func (ar *Arena) Reset() {
	ar.arrays = []Array{{Active: true}}
	ar.free.Reset()
}
