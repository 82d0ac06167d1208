// Package queue implements FIFO queue used as a worklist by grammar checks.
package queue

// Queue is a FIFO queue. Zero value is an empty queue.
type Queue[T any] struct {
	items []T
	head  int
}

// New creates queue containing items, first item is the head.
func New[T any](items ...T) *Queue[T] {
	return &Queue[T]{items: append([]T(nil), items...)}
}

// IsEmpty tells whether queue has no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.items)
}

// Append adds items to the tail.
func (q *Queue[T]) Append(items ...T) *Queue[T] {
	if q.head > 0 && q.head >= len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	q.items = append(q.items, items...)
	return q
}

// Head removes and returns head item.
// Returns zero value and false if queue is empty.
func (q *Queue[T]) Head() (result T, found bool) {
	if q.IsEmpty() {
		return
	}

	result = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	return result, true
}
