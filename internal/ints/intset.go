// Package ints defines a set of non-negative integers used for grammar analysis.
package ints

const IntSizeShift = 5 + (^uint(0) >> 32 & 1)
const IntSize = 1 << IntSizeShift

// Set is a bit set of non-negative integers. The zero value is an empty set.
type Set struct {
	chunks []uint
}

func countBits(chunk uint) int {
	result := 0
	for chunk != 0 {
		result++
		chunk &= (chunk - 1)
	}
	return result
}

func NewSet(items ...int) *Set {
	return (&Set{}).Add(items...)
}

func chunkIndex(item int) int {
	return item >> IntSizeShift
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (IntSize - 1))
}

// Add adds items, negative items are ignored.
func (s *Set) Add(items ...int) *Set {
	for _, item := range items {
		if item < 0 {
			continue
		}

		i := chunkIndex(item)
		for len(s.chunks) <= i {
			s.chunks = append(s.chunks, 0)
		}
		s.chunks[i] |= bitMask(item)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if item < 0 || chunkIndex(item) >= len(s.chunks) {
		return false
	}
	return s.chunks[chunkIndex(item)]&bitMask(item) != 0
}

func (s *Set) Len() int {
	result := 0
	for _, chunk := range s.chunks {
		result += countBits(chunk)
	}
	return result
}

func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}
	return true
}

// ToSlice returns items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Len())
	for i, chunk := range s.chunks {
		item := i << IntSizeShift
		for chunk != 0 {
			if chunk&1 != 0 {
				result = append(result, item)
			}
			item++
			chunk >>= 1
		}
	}
	return result
}
