// Package structures implements the three linear data structures the
// toolkit studies: a LIFO Stack, a FIFO Queue, and a singly linked List.
//
// 🚀 What is structures?
//
//	Textbook implementations with honest, documented costs:
//	  • Stack  — Push/Pop/Peek in O(1), Search in O(n) (top → bottom)
//	  • Queue  — Enqueue/Dequeue/Peek in O(1) amortized, Search in O(n)
//	  • List   — InsertHead/InsertTail in O(1) via head+tail pointers;
//	    InsertAt, Delete, Search, Get in O(n) (no random access)
//
// All three are generic over comparable element types, so the same code
// serves interactive demos (strings) and timing sweeps (ints).
//
// ⚙️ Usage:
//
//	st := structures.NewStack[int]()
//	st.Push(10)
//	top, err := st.Pop() // 10, nil
//
// Design notes:
//
//   - Accessors on empty containers return sentinel errors
//     (ErrEmptyStack, ErrEmptyQueue) rather than zero values, so callers
//     can distinguish "empty" from "stored zero".
//   - Search returns a position (-1 when absent) instead of an error:
//     a miss is an answer, not a failure.
//   - None of the types are safe for concurrent use; the perf package
//     times them single-threaded on purpose.
package structures
