// Package viz renders benchmark output as PNG charts: one growth curve
// per benchmark, plus comparison overlays across structures.
//
// 🚀 What is viz?
//
//	A thin presentation layer over the perf package's plotting contract.
//	It consumes perf.Series values — parallel sizes/times/errors slices —
//	and knows nothing about how they were measured:
//	  • SaveGrowthChart  — mean time vs input size with std-dev error bars
//	  • SaveComparison   — several benchmarks overlaid on one chart
//	  • SaveAll          — a chart per benchmark plus the canonical
//	    search and insert comparisons, written into one directory
//
// ⚙️ Usage:
//
//	suite, _ := perf.NewTester().RunAll([]int{100, 1000, 10000})
//	paths, err := viz.SaveAll(suite.PlotData(), "output")
//
// Charts are drawn with gonum.org/v1/plot. Axes stay linear: benchmark
// times can legitimately be zero at tiny sizes, which a log scale cannot
// represent.
package viz
