package complexity

import "math"

// EstimateOps converts a complexity class into an estimated step count at
// input size n. The mapping is the usual teaching approximation: O(1)→1,
// O(log n)→log₂n, O(n)→n, O(n log n)→n·log₂n, O(n²)→n². Classes beyond
// quadratic fall back to linear, which keeps demo output readable instead
// of astronomically large.
func EstimateOps(c Class, n int) int {
	if n < 1 {
		return 0
	}
	switch c {
	case O1:
		return 1
	case OLogN:
		return max(1, int(math.Log2(float64(n))))
	case ON:
		return n
	case ONLogN:
		if n <= 1 {
			return 1
		}

		return int(float64(n) * math.Log2(float64(n)))
	case ON2:
		return n * n
	default:
		return n
	}
}

// Predict estimates best/average/worst-case operation counts for one
// (structure, operation) pair at input size n. Errors propagate from
// Lookup for names outside the catalog.
func Predict(structure, operation string, n int) (Prediction, error) {
	a, err := Lookup(structure, operation)
	if err != nil {
		return Prediction{}, err
	}

	return Prediction{
		Structure: normalize(structure),
		Operation: a.Operation,
		InputSize: n,
		Best:      Estimate{Class: a.Best, Ops: EstimateOps(a.Best, n)},
		Average:   Estimate{Class: a.Average, Ops: EstimateOps(a.Average, n)},
		Worst:     Estimate{Class: a.Worst, Ops: EstimateOps(a.Worst, n)},
		Space:     a.Space,
	}, nil
}
