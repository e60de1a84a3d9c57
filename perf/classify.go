package perf

import (
	"fmt"
	"math"
)

// Classification labels emitted by Classify.
const (
	// ClassConstant covers O(1) and O(log n), which are visually
	// indistinguishable at small time ratios.
	ClassConstant = "~ O(1) or O(log n)"
	// ClassLinear marks time growing in step with input size.
	ClassLinear = "~ O(n)"
	// ClassQuadratic marks time growing with the square of input size.
	ClassQuadratic = "~ O(n^2)"
)

// Classification thresholds. The flat cutoff and the 0.8–1.5 bands are
// empirically chosen tolerances for timing noise on worst-case curves;
// they are a heuristic, not a complexity proof.
const (
	flatThreshold = 1.5
	bandLow       = 0.8
	bandHigh      = 1.5
)

// Classify relates two consecutive measurements of one benchmark and
// infers the implied complexity class.
//
// size_ratio = curr.InputSize / prev.InputSize; prev.InputSize must be
// positive or ErrNonPositiveSize is returned. time_ratio =
// curr.MeanTime / prev.MeanTime, defined as +Inf when the previous mean
// is zero (a degenerate measurement must not fail the analysis).
//
// The classification rules apply in this exact order — the precedence is
// a deliberate tie-break between ambiguous growth signatures:
//
//  1. time_ratio < 1.5                         → ClassConstant
//  2. within [0.8, 1.5] × size_ratio           → ClassLinear
//  3. within [0.8, 1.5] × size_ratio²          → ClassQuadratic
//  4. otherwise the raw ratio, "ratio=%.2f", stays unclassified
//
// Classify is pure: the same two inputs always produce bit-identical
// ratios.
func Classify(prev, curr TimingResult) (GrowthRatio, error) {
	if prev.InputSize <= 0 {
		return GrowthRatio{}, fmt.Errorf("%w: got %d", ErrNonPositiveSize, prev.InputSize)
	}

	sizeRatio := float64(curr.InputSize) / float64(prev.InputSize)

	timeRatio := math.Inf(1)
	if prev.MeanTime > 0 {
		timeRatio = curr.MeanTime / prev.MeanTime
	}

	return GrowthRatio{
		FromSize:          prev.InputSize,
		ToSize:            curr.InputSize,
		SizeRatio:         sizeRatio,
		TimeRatio:         timeRatio,
		ImpliedComplexity: implied(sizeRatio, timeRatio),
	}, nil
}

// implied applies the ordered classification rules to one ratio pair.
func implied(sizeRatio, timeRatio float64) string {
	quad := sizeRatio * sizeRatio
	switch {
	case timeRatio < flatThreshold:
		return ClassConstant
	case timeRatio >= bandLow*sizeRatio && timeRatio <= bandHigh*sizeRatio:
		return ClassLinear
	case timeRatio >= bandLow*quad && timeRatio <= bandHigh*quad:
		return ClassQuadratic
	default:
		return fmt.Sprintf("ratio=%.2f", timeRatio)
	}
}
