package perf_test

import (
	"testing"

	"github.com/katalvlaran/structbench/perf"
)

// BenchmarkTime measures the harness's own overhead on a no-op, the
// floor beneath every measurement the package produces.
func BenchmarkTime(b *testing.B) {
	op := perf.Op(func() {})
	for i := 0; i < b.N; i++ {
		_ = perf.Time(op)
	}
}

// BenchmarkClassify measures one ratio classification.
func BenchmarkClassify(b *testing.B) {
	prev, err := perf.NewTimingResult("op", 100, []float64{0.001}, "O(n)")
	if err != nil {
		b.Fatalf("building prev: %v", err)
	}
	curr, err := perf.NewTimingResult("op", 200, []float64{0.002}, "O(n)")
	if err != nil {
		b.Fatalf("building curr: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := perf.Classify(prev, curr); err != nil {
			b.Fatalf("classify failed: %v", err)
		}
	}
}

// BenchmarkRunAll_Tiny measures a full catalog sweep at toy sizes; it
// exists to catch accidental per-sweep overhead growth, not to time the
// structures themselves.
func BenchmarkRunAll_Tiny(b *testing.B) {
	tester := perf.NewTester(perf.WithIterations(1))
	sizes := []int{8, 16}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tester.RunAll(sizes); err != nil {
			b.Fatalf("sweep failed: %v", err)
		}
	}
}
