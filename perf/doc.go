// Package perf measures how the toolkit's data structure operations
// actually scale: it times them across growing input sizes, aggregates
// sample statistics, and classifies the observed growth pattern against
// the canonical complexity classes.
//
// 🚀 What is perf?
//
//	Three cooperating pieces:
//	  • Timing harness — Time(op) runs one unit of work under the
//	    monotonic clock and returns elapsed seconds
//	  • Benchmark runner — Tester repeats (setup → time) per iteration,
//	    sweeps a declarative 14-entry catalog across input sizes, and
//	    returns a Suite of TimingResult records
//	  • Growth classifier — Classify compares consecutive results and
//	    infers "~ O(1) or O(log n)" / "~ O(n)" / "~ O(n^2)" from the
//	    time-ratio vs size-ratio relationship
//
// ⚙️ Usage:
//
//	tester := perf.NewTester(perf.WithIterations(10))
//	suite, err := tester.RunAll([]int{100, 500, 1000, 5000, 10000})
//	if err != nil {
//	  // ErrBadIterations is the only configuration failure
//	}
//	fmt.Print(suite.Report())
//	for _, gr := range suite.GrowthRatios("stack_search") {
//	  fmt.Println(gr.ImpliedComplexity)
//	}
//
// Every catalog entry runs its operation in the documented worst-case
// configuration (search targets the last-inserted element, list access
// reaches for the tail, and so on), so measured curves track worst-case
// bounds rather than average-case luck. The classifier's bands are
// calibrated against exactly those curves.
//
// ⚠️ Classification is advisory:
//
//	The ratio bands (see Classify) are tolerances for timing noise, not a
//	complexity proof. An operation with a large constant factor can land
//	in the wrong band; that is accepted, documented behavior.
//
// Benchmarking is strictly sequential. Tester and Suite are not safe for
// concurrent use — wall-clock timing of memory-bound operations degrades
// under scheduler interference, so parallel runs would corrupt the very
// thing being measured.
package perf
