package structures

import "errors"

var (
	// ErrEmptyStack indicates Pop or Peek was called on an empty stack.
	ErrEmptyStack = errors.New("structures: stack is empty")
	// ErrEmptyQueue indicates Dequeue or Peek was called on an empty queue.
	ErrEmptyQueue = errors.New("structures: queue is empty")
	// ErrPositionOutOfRange indicates an insert position outside [0, Len].
	ErrPositionOutOfRange = errors.New("structures: position out of range")
	// ErrIndexOutOfRange indicates an access index outside [0, Len).
	ErrIndexOutOfRange = errors.New("structures: index out of range")
)
