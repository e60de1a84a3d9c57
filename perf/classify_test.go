package perf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structbench/perf"
)

// resultAt builds a minimal TimingResult for classifier tests; only the
// input size and mean matter to Classify.
func resultAt(size int, mean float64) perf.TimingResult {
	r, err := perf.NewTimingResult("test_op", size, []float64{mean}, "O(n)")
	if err != nil {
		panic(err)
	}

	return r
}

// TestClassify_ConstantBand: time×1.1 across a size doubling reads as
// constant-or-logarithmic (1.1 < 1.5 flat cutoff).
func TestClassify_ConstantBand(t *testing.T) {
	gr, err := perf.Classify(resultAt(100, 0.001), resultAt(200, 0.0011))
	require.NoError(t, err)

	assert.Equal(t, 2.0, gr.SizeRatio)
	assert.InDelta(t, 1.1, gr.TimeRatio, 1e-12)
	assert.Equal(t, perf.ClassConstant, gr.ImpliedComplexity)
}

// TestClassify_LinearBand: time×2.0 across a size doubling lands inside
// the linear band [1.6, 3.0].
func TestClassify_LinearBand(t *testing.T) {
	gr, err := perf.Classify(resultAt(100, 0.001), resultAt(200, 0.002))
	require.NoError(t, err)

	assert.Equal(t, 2.0, gr.SizeRatio)
	assert.InDelta(t, 2.0, gr.TimeRatio, 1e-12)
	assert.Equal(t, perf.ClassLinear, gr.ImpliedComplexity)
}

// TestClassify_QuadraticBand: time×3.9 across a size doubling lands inside
// the quadratic band [3.2, 6.0] around size_ratio² = 4.
func TestClassify_QuadraticBand(t *testing.T) {
	gr, err := perf.Classify(resultAt(100, 0.001), resultAt(200, 0.0039))
	require.NoError(t, err)

	assert.InDelta(t, 3.9, gr.TimeRatio, 1e-12)
	assert.Equal(t, perf.ClassQuadratic, gr.ImpliedComplexity)
}

// TestClassify_Unclassified: a ratio beyond every band is reported raw
// rather than forced into the nearest class.
func TestClassify_Unclassified(t *testing.T) {
	gr, err := perf.Classify(resultAt(100, 0.001), resultAt(200, 0.010))
	require.NoError(t, err)

	assert.Equal(t, "ratio=10.00", gr.ImpliedComplexity)
}

// TestClassify_PrecedenceTieBreak: with size_ratio = 1 the linear and
// quadratic bands coincide at [0.8, 1.5]; a flat ratio must resolve to
// the constant class because rule 1 is evaluated first.
func TestClassify_PrecedenceTieBreak(t *testing.T) {
	gr, err := perf.Classify(resultAt(100, 0.001), resultAt(100, 0.001))
	require.NoError(t, err)

	assert.Equal(t, 1.0, gr.SizeRatio)
	assert.Equal(t, perf.ClassConstant, gr.ImpliedComplexity)
}

// TestClassify_BandEdges pins the inclusive band boundaries: exactly
// 0.8×size_ratio and 1.5×size_ratio are both linear.
func TestClassify_BandEdges(t *testing.T) {
	low, err := perf.Classify(resultAt(100, 0.001), resultAt(200, 0.0016))
	require.NoError(t, err)
	assert.Equal(t, perf.ClassLinear, low.ImpliedComplexity, "0.8 × size_ratio is inside the band")

	high, err := perf.Classify(resultAt(100, 0.001), resultAt(200, 0.003))
	require.NoError(t, err)
	assert.Equal(t, perf.ClassLinear, high.ImpliedComplexity, "1.5 × size_ratio is inside the band")
}

// TestClassify_ZeroMeanYieldsInfinity: a zero-duration previous mean is a
// defined degenerate case — the time ratio becomes +Inf, never a panic.
func TestClassify_ZeroMeanYieldsInfinity(t *testing.T) {
	gr, err := perf.Classify(resultAt(100, 0), resultAt(200, 0.001))
	require.NoError(t, err)

	assert.True(t, math.IsInf(gr.TimeRatio, 1), "zero previous mean must yield +Inf")
	assert.Equal(t, "ratio=+Inf", gr.ImpliedComplexity)
}

// TestClassify_NonPositiveSize: a non-positive previous size makes the
// size ratio undefined and must surface ErrNonPositiveSize.
func TestClassify_NonPositiveSize(t *testing.T) {
	_, err := perf.Classify(resultAt(0, 0.001), resultAt(200, 0.002))
	assert.ErrorIs(t, err, perf.ErrNonPositiveSize)
}

// TestClassify_Idempotent: re-running Classify on the same inputs yields
// bit-identical ratios.
func TestClassify_Idempotent(t *testing.T) {
	prev, curr := resultAt(100, 0.00137), resultAt(500, 0.00691)

	a, err := perf.Classify(prev, curr)
	require.NoError(t, err)
	b, err := perf.Classify(prev, curr)
	require.NoError(t, err)

	assert.Equal(t, a.SizeRatio, b.SizeRatio, "size ratio must be bit-identical")
	assert.Equal(t, a.TimeRatio, b.TimeRatio, "time ratio must be bit-identical")
	assert.Equal(t, a.ImpliedComplexity, b.ImpliedComplexity)
}
