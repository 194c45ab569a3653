package cpu

import (
	"encoding/binary"
	"errors"
	"io"
)

// ReadImage decodes a compiled program image: a whole number of 4-byte
// big-endian words, no header, no padding. The byte length must be a
// positive multiple of 4.
func ReadImage(r io.Reader) (words []uint32, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		err = errors.Join(ErrImageShort, err)
		return
	}

	if len(raw) == 0 {
		err = ErrImageEmpty
		return
	}

	if len(raw)%4 != 0 {
		err = ErrImageRagged
		return
	}

	words = make([]uint32, len(raw)/4)
	for n := range words {
		words[n] = binary.BigEndian.Uint32(raw[n*4:])
	}

	return
}

// WriteImage encodes words as a compiled program image.
func WriteImage(w io.Writer, words []uint32) (err error) {
	var buf [4]byte
	for _, word := range words {
		binary.BigEndian.PutUint32(buf[:], word)
		_, err = w.Write(buf[:])
		if err != nil {
			return
		}
	}

	return
}
