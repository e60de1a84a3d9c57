package perf

import "time"

// Op is a single unit of work to be timed.
type Op func()

// Setup constructs fresh inputs for one timed invocation and returns the
// Op bound to them. The runner calls it before every iteration, so
// destructive operations (pop-until-empty, delete) always start from a
// pristine structure instead of the wreckage of the previous run.
type Setup func() Op

// Time runs op exactly once and returns the elapsed wall-clock duration
// in seconds. time.Now carries Go's monotonic clock reading, so the
// measurement is immune to wall-clock adjustments.
//
// The harness is stateless: it holds nothing across invocations, and any
// side effects belong to the operation under test.
func Time(op Op) float64 {
	start := time.Now()
	op()

	return time.Since(start).Seconds()
}
