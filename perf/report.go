package perf

import (
	"fmt"
	"strings"
)

// Report formats the suite as a plain-text table block per benchmark:
// input size, mean time, standard deviation and the predicted complexity
// label. The CLI prints it as-is; tests parse nothing from it.
func (s *Suite) Report() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 80) + "\n")
	b.WriteString("PERFORMANCE BENCHMARK REPORT\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")

	for _, name := range s.names {
		fmt.Fprintf(&b, "\n--- %s ---\n", strings.ToUpper(strings.ReplaceAll(name, "_", " ")))
		fmt.Fprintf(&b, "%-10s %-15s %-15s %-25s\n", "Size", "Mean (s)", "Std Dev", "Predicted")
		b.WriteString(strings.Repeat("-", 65) + "\n")
		for _, r := range s.results[name] {
			fmt.Fprintf(&b, "%-10d %-15.6f %-15.6f %-25s\n",
				r.InputSize, r.MeanTime, r.StdDev, r.PredictedComplexity)
		}
	}

	return b.String()
}

// PlotData flattens the suite into the plotting contract: one Series per
// benchmark with parallel size/time/error slices. Recomputed on every
// call; mutating the returned map never touches the suite.
func (s *Suite) PlotData() map[string]Series {
	data := make(map[string]Series, len(s.names))
	for _, name := range s.names {
		series := s.results[name]
		out := Series{
			Sizes:  make([]int, 0, len(series)),
			Times:  make([]float64, 0, len(series)),
			Errors: make([]float64, 0, len(series)),
		}
		if len(series) > 0 {
			out.Complexity = series[0].PredictedComplexity
		}
		for _, r := range series {
			out.Sizes = append(out.Sizes, r.InputSize)
			out.Times = append(out.Times, r.MeanTime)
			out.Errors = append(out.Errors, r.StdDev)
		}
		data[name] = out
	}

	return data
}
