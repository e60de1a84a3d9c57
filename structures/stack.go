package structures

import (
	"fmt"
	"strings"
)

// Stack is a LIFO (last in, first out) container backed by a slice.
//
// Complexity:
//
//	Push / Pop / Peek — O(1) amortized
//	Search            — O(n), scanning from the top down
type Stack[T comparable] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds v on top of the stack. O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack when the stack is empty. O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyStack
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return v, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack when the stack is empty. O(1).
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// Search returns the 1-based distance of v from the top of the stack,
// or -1 when v is not present. Worst case (v at the bottom) is O(n).
func (s *Stack[T]) Search(v T) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] == v {
			return len(s.items) - i
		}
	}

	return -1
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Slice returns a copy of the contents, bottom to top.
func (s *Stack[T]) Slice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}

// String renders the stack top-first, one element per line.
func (s *Stack[T]) String() string {
	if len(s.items) == 0 {
		return "Empty Stack"
	}
	var b strings.Builder
	b.WriteString("--- TOP ---\n")
	for i := len(s.items) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "| %v |\n", s.items[i])
	}
	b.WriteString("--- BOTTOM ---")

	return b.String()
}
