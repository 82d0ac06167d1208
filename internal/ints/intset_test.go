package ints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntSize(t *testing.T) {
	var realShift uint
	if ^uint(0) == 0xffffffff {
		realShift = 5
	} else {
		realShift = 6
	}
	assert.Equal(t, realShift, uint(IntSizeShift))
}

func TestEmpty(t *testing.T) {
	s := NewSet()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.ToSlice())
	s.Add(-1)
	assert.True(t, s.IsEmpty())
	s.Add(1)
	assert.False(t, s.IsEmpty())

	var zero Set
	assert.True(t, zero.IsEmpty())
	assert.False(t, zero.Contains(0))
}

func TestAdd(t *testing.T) {
	s := NewSet()
	s.Add(0, 1, 100, -1, 1)
	assert.Equal(t, []int{0, 1, 100}, s.ToSlice())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(100))
	assert.False(t, s.Contains(2))
	assert.False(t, s.Contains(1000))
	assert.False(t, s.Contains(-1))
}

func TestChunkBoundaries(t *testing.T) {
	s := NewSet(IntSize-1, IntSize, 2*IntSize+1)
	assert.Equal(t, []int{IntSize - 1, IntSize, 2*IntSize + 1}, s.ToSlice())
	assert.False(t, s.Contains(IntSize+1))
}
