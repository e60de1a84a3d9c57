package perf

import "fmt"

// DefaultIterations is the number of timed repetitions per benchmark when
// no option overrides it.
const DefaultIterations = 10

// Tester runs benchmarks. It holds configuration only — every RunAll call
// returns a fresh Suite, so results never leak across runs.
//
// Not safe for concurrent use; see the package documentation.
type Tester struct {
	iterations int
}

// Option configures a Tester.
type Option func(*Tester)

// WithIterations sets how many times each benchmark repeats its timed
// operation. Values below 1 are kept as-is and rejected with
// ErrBadIterations at run time, so a misconfiguration is reported where
// the caller can handle it.
func WithIterations(n int) Option {
	return func(t *Tester) { t.iterations = n }
}

// NewTester returns a Tester with DefaultIterations, then applies opts in
// order.
func NewTester(opts ...Option) *Tester {
	t := &Tester{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Iterations returns the configured repetition count.
func (t *Tester) Iterations() int {
	return t.iterations
}

// Benchmark measures one operation at one input size.
//
// For each of the configured iterations it calls setup to build fresh
// inputs, times the returned op once via the harness, and collects the
// duration. The aggregated TimingResult carries the predicted complexity
// label unchanged.
//
// Returns ErrBadIterations when the Tester was configured with
// iterations < 1.
func (t *Tester) Benchmark(setup Setup, name string, inputSize int, predicted string) (TimingResult, error) {
	if t.iterations < 1 {
		return TimingResult{}, fmt.Errorf("%w: got %d", ErrBadIterations, t.iterations)
	}

	times := make([]float64, 0, t.iterations)
	for i := 0; i < t.iterations; i++ {
		op := setup() // fresh inputs every iteration
		times = append(times, Time(op))
	}

	return NewTimingResult(name, inputSize, times, predicted)
}

// RunAll sweeps the full benchmark catalog across the given input sizes
// and returns the assembled Suite: one TimingResult per (benchmark, size)
// pair, series ordered by the caller's size order.
//
// Sizes should be ascending — growth-ratio analysis divides consecutive
// entries and reads the quotient as growth. A sequence with fewer than
// two sizes still benchmarks fine; it just yields single-point series
// with no ratios.
func (t *Tester) RunAll(sizes []int) (*Suite, error) {
	suite := newSuite()
	for _, bc := range catalog {
		suite.ensure(bc.name)
		for _, n := range sizes {
			res, err := t.Benchmark(bc.build(n), bc.operation, n, bc.predicted)
			if err != nil {
				return nil, fmt.Errorf("benchmark %s (n=%d): %w", bc.name, n, err)
			}
			suite.add(bc.name, res)
		}
	}

	return suite, nil
}
