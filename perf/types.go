package perf

import (
	"fmt"
	"math"
)

// TimingResult is one completed measurement campaign: a single operation
// at a single input size, timed over multiple iterations.
//
// MeanTime, StdDev, MinTime and MaxTime are derived from Times at
// construction and must never be edited independently of them; treat the
// whole value as immutable once returned.
type TimingResult struct {
	// Operation is the benchmarked operation's reporting name.
	Operation string
	// InputSize is the number of elements the operation ran against.
	InputSize int
	// Times holds one wall-clock duration in seconds per iteration.
	Times []float64

	// MeanTime is the arithmetic mean of Times.
	MeanTime float64
	// StdDev is the sample standard deviation of Times; exactly 0 for a
	// single iteration, where sample variance is undefined.
	StdDev float64
	// MinTime is the fastest iteration.
	MinTime float64
	// MaxTime is the slowest iteration.
	MaxTime float64

	// PredictedComplexity is the static Big-O annotation attached at
	// benchmark time, independent of the measured outcome.
	PredictedComplexity string
}

// NewTimingResult derives the aggregate statistics from times and returns
// the assembled record. Returns ErrNoSamples for an empty sample set —
// a result without measurements has no defined mean.
func NewTimingResult(operation string, inputSize int, times []float64, predicted string) (TimingResult, error) {
	if len(times) == 0 {
		return TimingResult{}, ErrNoSamples
	}

	mean, std, lo, hi := summarize(times)

	return TimingResult{
		Operation:           operation,
		InputSize:           inputSize,
		Times:               times,
		MeanTime:            mean,
		StdDev:              std,
		MinTime:             lo,
		MaxTime:             hi,
		PredictedComplexity: predicted,
	}, nil
}

// String renders the result in the compact one-line report form.
func (r TimingResult) String() string {
	return fmt.Sprintf("%s (n=%d): mean=%.6fs, std=%.6fs", r.Operation, r.InputSize, r.MeanTime, r.StdDev)
}

// summarize computes mean, sample standard deviation, min and max of a
// non-empty sample set. Sample variance divides by n-1 and is defined as
// 0 for n == 1.
func summarize(values []float64) (mean, std, lo, hi float64) {
	lo, hi = values[0], values[0]
	sum := 0.0
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += v
	}
	mean = sum / float64(len(values))

	variance := 0.0
	if len(values) >= 2 {
		for _, v := range values {
			d := v - mean
			variance += d * d
		}
		variance /= float64(len(values) - 1)
	}
	std = math.Sqrt(variance)

	return mean, std, lo, hi
}

// GrowthRatio relates two consecutive measurements of one benchmark and
// carries the complexity class their ratio implies. Values are derived on
// demand from a Suite's ordered results and never cached.
type GrowthRatio struct {
	// FromSize and ToSize are the two consecutive input sizes.
	FromSize int
	ToSize   int

	// SizeRatio is ToSize / FromSize.
	SizeRatio float64
	// TimeRatio is the ratio of mean times, +Inf when the earlier mean
	// was zero (degenerate, but defined).
	TimeRatio float64

	// ImpliedComplexity is the classification label; see Classify.
	ImpliedComplexity string
}

// String renders the ratio in the report form used by the CLI.
func (g GrowthRatio) String() string {
	return fmt.Sprintf("n=%d -> n=%d: size×%.1f, time×%.2f (%s)",
		g.FromSize, g.ToSize, g.SizeRatio, g.TimeRatio, g.ImpliedComplexity)
}

// Series is the numeric contract handed to plot consumers: parallel
// slices of input sizes, mean times and standard deviations, plus the
// predicted complexity label. Any renderer — chart library, terminal
// table, JSON export — can consume it without knowing about perf.
type Series struct {
	Sizes      []int
	Times      []float64
	Errors     []float64
	Complexity string
}
