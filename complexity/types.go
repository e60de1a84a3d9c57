// Package complexity types: the Class enumeration and the Analysis record.
package complexity

// Class is a Big-O complexity label.
//
// Only the first five classes appear in the structure tables; the larger
// ones exist so predictions and future tables share one vocabulary.
type Class string

const (
	// O1 — constant time, independent of input size.
	O1 Class = "O(1)"
	// OLogN — logarithmic time.
	OLogN Class = "O(log n)"
	// ON — linear time.
	ON Class = "O(n)"
	// ONLogN — linearithmic time.
	ONLogN Class = "O(n log n)"
	// ON2 — quadratic time.
	ON2 Class = "O(n²)"
	// ON3 — cubic time.
	ON3 Class = "O(n³)"
	// O2N — exponential time.
	O2N Class = "O(2ⁿ)"
	// ONFactorial — factorial time.
	ONFactorial Class = "O(n!)"
)

// Analysis is the full complexity record for one operation: best, average
// and worst-case time bounds, the space bound, and a prose explanation of
// why the bounds hold.
type Analysis struct {
	// Operation is the canonical operation name, e.g. "insert_head".
	Operation string

	// Best is the best-case time bound.
	Best Class
	// Average is the average-case time bound.
	Average Class
	// Worst is the worst-case time bound.
	Worst Class
	// Space is the auxiliary space bound.
	Space Class

	// Explanation says, in plain language, why the bounds above hold.
	Explanation string
}

// Prediction estimates concrete operation counts for one (structure,
// operation, n) triple across best, average and worst case.
type Prediction struct {
	Structure string
	Operation string
	InputSize int

	Best    Estimate
	Average Estimate
	Worst   Estimate
	Space   Class
}

// Estimate pairs a complexity class with its estimated step count at a
// concrete input size.
type Estimate struct {
	Class Class
	Ops   int
}
