package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	assert := assert.New(t)

	var s Stack

	assert.True(s.Empty())
	_, ok := s.Pop()
	assert.False(ok)

	s.Push(3)
	s.Push(5)
	assert.False(s.Empty())

	value, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint32(5), value)

	value, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint32(5), value)

	value, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint32(3), value)

	assert.True(s.Empty())
}

func TestStackReset(t *testing.T) {
	assert := assert.New(t)

	var s Stack

	s.Push(7)
	s.Reset()
	assert.True(s.Empty())

	_, ok := s.Peek()
	assert.False(ok)
}
