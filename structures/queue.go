package structures

import (
	"fmt"
	"strings"
)

// Queue is a FIFO (first in, first out) container.
//
// The backing slice keeps a moving head index so Dequeue does not shift
// elements; spent capacity is reclaimed once the head passes half the
// slice. This keeps both Enqueue and Dequeue O(1) amortized, matching
// the documented complexity table.
type Queue[T comparable] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v at the rear of the queue. O(1) amortized.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front element.
// Returns ErrEmptyQueue when the queue is empty. O(1) amortized.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.head >= len(q.items) {
		return zero, ErrEmptyQueue
	}
	v := q.items[q.head]
	q.items[q.head] = zero // release the reference for GC
	q.head++

	// Compact once more than half the slice is spent.
	if q.head > len(q.items)/2 && q.head > 16 {
		q.items = append([]T(nil), q.items[q.head:]...)
		q.head = 0
	}

	return v, nil
}

// Peek returns the front element without removing it.
// Returns ErrEmptyQueue when the queue is empty. O(1).
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if q.head >= len(q.items) {
		return zero, ErrEmptyQueue
	}

	return q.items[q.head], nil
}

// Search returns the 0-based position of v from the front of the queue,
// or -1 when v is not present. Worst case (v at the rear) is O(n).
func (q *Queue[T]) Search(v T) int {
	for i := q.head; i < len(q.items); i++ {
		if q.items[i] == v {
			return i - q.head
		}
	}

	return -1
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.head >= len(q.items)
}

// Len returns the number of stored elements.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// Slice returns a copy of the contents, front to rear.
func (q *Queue[T]) Slice() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])

	return out
}

// String renders the queue front-first on a single line.
func (q *Queue[T]) String() string {
	if q.IsEmpty() {
		return "Empty Queue"
	}
	parts := make([]string, 0, q.Len())
	for _, v := range q.items[q.head:] {
		parts = append(parts, fmt.Sprintf("%v", v))
	}

	return "FRONT -> " + strings.Join(parts, " <- ") + " <- REAR"
}
