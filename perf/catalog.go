package perf

import "github.com/katalvlaran/structbench/structures"

// benchmarkCase is one row of the declarative catalog: a canonical name,
// a reporting operation label, the predicted complexity annotation, and a
// builder producing a size-bound Setup.
//
// Each build function encodes the operation's worst-case configuration —
// search targets sit where the traversal ends, positional edits reach as
// deep as the structure forces them to — so measured growth tracks the
// worst-case bound the classifier is calibrated against.
type benchmarkCase struct {
	name      string
	operation string
	predicted string
	build     func(n int) Setup
}

// Predicted-complexity annotations shared across catalog rows. Bulk rows
// time n primitive calls in one op, hence the "total / per op" phrasing.
const (
	predictedBulkConstant = "O(n) total, O(1) per op"
	predictedConstant     = "O(1)"
	predictedLinear       = "O(n)"
)

// stackOf returns a stack filled with 0..n-1; 0 ends up at the bottom.
func stackOf(n int) *structures.Stack[int] {
	st := structures.NewStack[int]()
	for i := 0; i < n; i++ {
		st.Push(i)
	}

	return st
}

// queueOf returns a queue filled with 0..n-1; n-1 ends up at the rear.
func queueOf(n int) *structures.Queue[int] {
	q := structures.NewQueue[int]()
	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}

	return q
}

// listOf returns a list filled with 0..n-1 head to tail.
func listOf(n int) *structures.List[int] {
	l := structures.NewList[int]()
	for i := 0; i < n; i++ {
		l.InsertTail(i)
	}

	return l
}

// catalog enumerates the fourteen (structure, operation) benchmarks in
// execution order. One declarative table consumed by one sweep loop
// replaces fourteen near-identical benchmark routines.
var catalog = []benchmarkCase{
	// --- stack ---
	{
		name: "stack_push", operation: "stack_push_n_items", predicted: predictedBulkConstant,
		build: func(n int) Setup {
			return func() Op {
				st := structures.NewStack[int]()

				return func() {
					for i := 0; i < n; i++ {
						st.Push(i)
					}
				}
			}
		},
	},
	{
		name: "stack_pop", operation: "stack_pop_n_items", predicted: predictedBulkConstant,
		build: func(n int) Setup {
			return func() Op {
				st := stackOf(n)

				return func() {
					for !st.IsEmpty() {
						_, _ = st.Pop()
					}
				}
			}
		},
	},
	{
		name: "stack_peek", operation: "stack_peek", predicted: predictedConstant,
		build: func(n int) Setup {
			return func() Op {
				st := stackOf(n)

				return func() { _, _ = st.Peek() }
			}
		},
	},
	{
		name: "stack_search", operation: "stack_search_worst", predicted: predictedLinear,
		build: func(n int) Setup {
			return func() Op {
				st := stackOf(n)

				// 0 is the bottom-most element: full traversal.
				return func() { _ = st.Search(0) }
			}
		},
	},

	// --- queue ---
	{
		name: "queue_enqueue", operation: "queue_enqueue_n_items", predicted: predictedBulkConstant,
		build: func(n int) Setup {
			return func() Op {
				q := structures.NewQueue[int]()

				return func() {
					for i := 0; i < n; i++ {
						q.Enqueue(i)
					}
				}
			}
		},
	},
	{
		name: "queue_dequeue", operation: "queue_dequeue_n_items", predicted: predictedBulkConstant,
		build: func(n int) Setup {
			return func() Op {
				q := queueOf(n)

				return func() {
					for !q.IsEmpty() {
						_, _ = q.Dequeue()
					}
				}
			}
		},
	},
	{
		name: "queue_peek", operation: "queue_peek", predicted: predictedConstant,
		build: func(n int) Setup {
			return func() Op {
				q := queueOf(n)

				return func() { _, _ = q.Peek() }
			}
		},
	},
	{
		name: "queue_search", operation: "queue_search_worst", predicted: predictedLinear,
		build: func(n int) Setup {
			return func() Op {
				q := queueOf(n)

				// n-1 is the rear element: full traversal.
				return func() { _ = q.Search(n - 1) }
			}
		},
	},

	// --- linked list ---
	{
		name: "linkedlist_insert_head", operation: "linkedlist_insert_head_n", predicted: predictedBulkConstant,
		build: func(n int) Setup {
			return func() Op {
				l := structures.NewList[int]()

				return func() {
					for i := 0; i < n; i++ {
						l.InsertHead(i)
					}
				}
			}
		},
	},
	{
		name: "linkedlist_insert_tail", operation: "linkedlist_insert_tail_n", predicted: predictedBulkConstant,
		build: func(n int) Setup {
			return func() Op {
				l := structures.NewList[int]()

				return func() {
					for i := 0; i < n; i++ {
						l.InsertTail(i)
					}
				}
			}
		},
	},
	{
		name: "linkedlist_insert_position", operation: "linkedlist_insert_position_worst", predicted: predictedLinear,
		build: func(n int) Setup {
			return func() Op {
				l := listOf(n)

				// Position n-1 forces a near-full traversal; position n
				// would short-circuit to the O(1) tail pointer.
				return func() { _ = l.InsertAt(-1, max(0, n-1)) }
			}
		},
	},
	{
		name: "linkedlist_delete", operation: "linkedlist_delete_worst", predicted: predictedLinear,
		build: func(n int) Setup {
			return func() Op {
				l := listOf(n)

				// n-1 lives at the tail: full traversal before unlinking.
				return func() { _ = l.Delete(n - 1) }
			}
		},
	},
	{
		name: "linkedlist_search", operation: "linkedlist_search_worst", predicted: predictedLinear,
		build: func(n int) Setup {
			return func() Op {
				l := listOf(n)

				return func() { _ = l.Search(n - 1) }
			}
		},
	},
	{
		name: "linkedlist_access", operation: "linkedlist_access_worst", predicted: predictedLinear,
		build: func(n int) Setup {
			return func() Op {
				l := listOf(n)

				return func() { _, _ = l.Get(n - 1) }
			}
		},
	},
}

// Catalog returns the canonical benchmark names in execution order.
func Catalog() []string {
	out := make([]string, len(catalog))
	for i, bc := range catalog {
		out[i] = bc.name
	}

	return out
}
