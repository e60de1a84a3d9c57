package complexity

// Canonical structure names accepted by Lookup, Operations and Predict.
const (
	StructStack      = "stack"
	StructQueue      = "queue"
	StructLinkedList = "linked_list"
)

// structureOrder fixes the enumeration order of Structures().
var structureOrder = []string{StructStack, StructQueue, StructLinkedList}

// operationOrder fixes the enumeration order of Operations() per structure.
var operationOrder = map[string][]string{
	StructStack:      {"push", "pop", "peek", "search"},
	StructQueue:      {"enqueue", "dequeue", "peek", "search"},
	StructLinkedList: {"insert_head", "insert_tail", "insert_position", "delete", "search", "access"},
}

// tables holds the fixed complexity catalog for the three structures.
var tables = map[string]map[string]Analysis{
	StructStack: {
		"push": {
			Operation: "push",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "Push adds an element at the top with direct pointer access. " +
				"The worst case degrades to O(n) only when a backing array must resize.",
		},
		"pop": {
			Operation: "pop",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "Pop removes the top element with direct pointer access. " +
				"No traversal is needed since the top reference is maintained.",
		},
		"peek": {
			Operation: "peek",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "Peek returns the top element without modification, via the " +
				"maintained top pointer.",
		},
		"search": {
			Operation: "search",
			Best:      O1, Average: ON, Worst: ON, Space: O1,
			Explanation: "Search traverses from the top. Best case O(1) when the element " +
				"is on top; worst case O(n) when it sits at the bottom or is absent.",
		},
	},
	StructQueue: {
		"enqueue": {
			Operation: "enqueue",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "Enqueue appends at the rear via the maintained tail position, " +
				"so cost is constant regardless of queue length.",
		},
		"dequeue": {
			Operation: "dequeue",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "Dequeue removes from the front. A deque-style backing store " +
				"keeps this O(1); a naive array shift would be O(n).",
		},
		"peek": {
			Operation: "peek",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "Peek returns the front element by direct access, without " +
				"modification or traversal.",
		},
		"search": {
			Operation: "search",
			Best:      O1, Average: ON, Worst: ON, Space: O1,
			Explanation: "Search traverses front to rear. Best case at the front; worst " +
				"case O(n) at the rear or when absent.",
		},
	},
	StructLinkedList: {
		"insert_head": {
			Operation: "insert_head",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "Inserting at the head creates a node and swings the head " +
				"pointer. No traversal, whatever the list size.",
		},
		"insert_tail": {
			Operation: "insert_tail",
			Best:      O1, Average: O1, Worst: O1, Space: O1,
			Explanation: "With a maintained tail pointer, tail insert is O(1). Without " +
				"one it would require an O(n) walk to the end.",
		},
		"insert_position": {
			Operation: "insert_position",
			Best:      O1, Average: ON, Worst: ON, Space: O1,
			Explanation: "Positional insert must walk to the position first. Best case " +
				"O(1) at the head; middle and near-tail positions cost O(n).",
		},
		"delete": {
			Operation: "delete",
			Best:      O1, Average: ON, Worst: ON, Space: O1,
			Explanation: "Delete must locate the value before unlinking. Best case O(1) " +
				"at the head; worst case a full O(n) traversal.",
		},
		"search": {
			Operation: "search",
			Best:      O1, Average: ON, Worst: ON, Space: O1,
			Explanation: "Only linear search is possible: nodes offer no random access. " +
				"Best case at the head; worst case at the tail or absent.",
		},
		"access": {
			Operation: "access",
			Best:      O1, Average: ON, Worst: ON, Space: O1,
			Explanation: "Reaching index i means walking i links from the head. Unlike " +
				"arrays, linked lists have no O(1) random access.",
		},
	},
}

// arrayOrder fixes the enumeration order of Array().
var arrayOrder = []string{"access", "insert_end", "insert_beginning", "search"}

// arrayTable is a dynamic-array reference point for contrast in reports.
var arrayTable = map[string]Analysis{
	"access": {
		Operation: "access",
		Best:      O1, Average: O1, Worst: O1, Space: O1,
		Explanation: "Arrays compute the address directly from the index, so access " +
			"is constant time at any size.",
	},
	"insert_end": {
		Operation: "insert_end",
		Best:      O1, Average: O1, Worst: ON, Space: O1,
		Explanation: "Appending is amortized O(1) with a dynamic array; the worst " +
			"case O(n) pays for copying into a grown allocation.",
	},
	"insert_beginning": {
		Operation: "insert_beginning",
		Best:      ON, Average: ON, Worst: ON, Space: O1,
		Explanation: "Inserting at the front shifts every existing element right, " +
			"always O(n).",
	},
	"search": {
		Operation: "search",
		Best:      O1, Average: ON, Worst: ON, Space: O1,
		Explanation: "An unsorted array needs linear search. Sorted arrays allow " +
			"O(log n) binary search, but the baseline operation is O(n).",
	},
}

// equivalentOps maps a generic operation kind onto each structure's
// concrete operation, for cross-structure comparison.
var equivalentOps = map[string]map[string]string{
	"insert": {
		StructStack:      "push",
		StructQueue:      "enqueue",
		StructLinkedList: "insert_head",
	},
	"delete": {
		StructStack:      "pop",
		StructQueue:      "dequeue",
		StructLinkedList: "delete",
	},
	"search": {
		StructStack:      "search",
		StructQueue:      "search",
		StructLinkedList: "search",
	},
}
