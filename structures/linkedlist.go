package structures

import (
	"fmt"
	"strings"
)

// node is a single cell of the singly linked List.
type node[T comparable] struct {
	data T
	next *node[T]
}

// List is a singly linked list with head and tail pointers and a cached
// length.
//
// Complexity:
//
//	InsertHead / InsertTail — O(1) (tail pointer maintained)
//	InsertAt / Delete / Search / Get — O(n), traversal from the head
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewList returns an empty List.
func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// InsertHead prepends v to the list. O(1).
func (l *List[T]) InsertHead(v T) {
	n := &node[T]{data: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// InsertTail appends v to the list. O(1) thanks to the tail pointer.
func (l *List[T]) InsertTail(v T) {
	n := &node[T]{data: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// InsertAt inserts v at the given 0-based position.
// Position 0 prepends, position Len() appends; anything outside [0, Len]
// returns ErrPositionOutOfRange. Middle positions cost O(n) traversal.
func (l *List[T]) InsertAt(v T, position int) error {
	if position < 0 || position > l.size {
		return fmt.Errorf("%w: %d (size %d)", ErrPositionOutOfRange, position, l.size)
	}
	switch position {
	case 0:
		l.InsertHead(v)
	case l.size:
		l.InsertTail(v)
	default:
		curr := l.head
		for i := 0; i < position-1; i++ {
			curr = curr.next
		}
		curr.next = &node[T]{data: v, next: curr.next}
		l.size++
	}

	return nil
}

// Delete removes the first occurrence of v and reports whether it was
// found. Worst case (v at the tail, or absent) is O(n).
func (l *List[T]) Delete(v T) bool {
	if l.head == nil {
		return false
	}
	if l.head.data == v {
		l.head = l.head.next
		if l.head == nil {
			l.tail = nil
		}
		l.size--

		return true
	}
	for curr := l.head; curr.next != nil; curr = curr.next {
		if curr.next.data == v {
			if curr.next == l.tail {
				l.tail = curr
			}
			curr.next = curr.next.next
			l.size--

			return true
		}
	}

	return false
}

// Search returns the 0-based index of the first occurrence of v, or -1
// when v is not present. Worst case (v at the tail) is O(n).
func (l *List[T]) Search(v T) int {
	idx := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.data == v {
			return idx
		}
		idx++
	}

	return -1
}

// Get returns the element at the given 0-based index.
// Returns ErrIndexOutOfRange for indexes outside [0, Len). Linked lists
// have no random access, so this is O(n).
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, l.size)
	}
	curr := l.head
	for i := 0; i < index; i++ {
		curr = curr.next
	}

	return curr.data, nil
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int {
	return l.size
}

// Slice returns a copy of the contents, head to tail.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for curr := l.head; curr != nil; curr = curr.next {
		out = append(out, curr.data)
	}

	return out
}

// String renders the list head-first in arrow notation.
func (l *List[T]) String() string {
	if l.head == nil {
		return "Empty List"
	}
	parts := make([]string, 0, l.size+1)
	for curr := l.head; curr != nil; curr = curr.next {
		parts = append(parts, fmt.Sprintf("%v", curr.data))
	}
	parts = append(parts, "nil")

	return strings.Join(parts, " -> ")
}
