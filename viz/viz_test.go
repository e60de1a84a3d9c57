package viz_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structbench/perf"
	"github.com/katalvlaran/structbench/viz"
)

// series builds a well-formed three-point Series for chart tests.
func series() perf.Series {
	return perf.Series{
		Sizes:      []int{100, 1000, 10000},
		Times:      []float64{0.0001, 0.001, 0.010},
		Errors:     []float64{0.00001, 0.0001, 0.001},
		Complexity: "O(n)",
	}
}

// TestSaveGrowthChart_WritesPNG renders one benchmark chart and checks a
// non-empty file lands at the requested path.
func TestSaveGrowthChart_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growth.png")

	require.NoError(t, viz.SaveGrowthChart("linkedlist_search", series(), path))

	info, err := os.Stat(path)
	require.NoError(t, err, "chart file must exist")
	assert.Greater(t, info.Size(), int64(0), "chart file must not be empty")
}

// TestSaveGrowthChart_EmptySeries rejects a series with no points.
func TestSaveGrowthChart_EmptySeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := viz.SaveGrowthChart("empty", perf.Series{}, path)
	assert.ErrorIs(t, err, viz.ErrEmptySeries)
	assert.NoFileExists(t, path)
}

// TestSaveGrowthChart_MismatchedSeries rejects ragged parallel slices.
func TestSaveGrowthChart_MismatchedSeries(t *testing.T) {
	bad := perf.Series{Sizes: []int{1, 2}, Times: []float64{0.1}, Errors: []float64{0, 0}}

	err := viz.SaveGrowthChart("bad", bad, filepath.Join(t.TempDir(), "bad.png"))
	assert.ErrorIs(t, err, viz.ErrMismatchedSeries)
}

// TestSaveComparison_SkipsMissingNames overlays only the series present
// in the data and still writes the chart.
func TestSaveComparison_SkipsMissingNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmp.png")
	data := map[string]perf.Series{"stack_search": series()}

	err := viz.SaveComparison("search", data, []string{"stack_search", "queue_search"}, path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

// TestSaveComparison_AllMissing returns ErrEmptySeries when nothing can
// be plotted.
func TestSaveComparison_AllMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.png")

	err := viz.SaveComparison("nothing", map[string]perf.Series{}, []string{"a", "b"}, path)
	assert.ErrorIs(t, err, viz.ErrEmptySeries)
	assert.NoFileExists(t, path)
}

// TestSaveAll_WritesChartsAndComparisons renders a small real sweep and
// checks the full chart set appears: growth charts, overlays, analysis
// panels and the reference curves.
func TestSaveAll_WritesChartsAndComparisons(t *testing.T) {
	suite, err := perf.NewTester(perf.WithIterations(1)).RunAll([]int{8, 16})
	require.NoError(t, err)

	dir := t.TempDir()
	written, err := viz.SaveAll(suite.PlotData(), dir)
	require.NoError(t, err)

	// 14 growth charts + 2 overlays + 3 analysis panels + reference curves.
	assert.Len(t, written, len(perf.Catalog())+6)
	assert.FileExists(t, filepath.Join(dir, "growth_stack_search.png"))
	assert.FileExists(t, filepath.Join(dir, "comparison_search.png"))
	assert.FileExists(t, filepath.Join(dir, "comparison_insert.png"))
	assert.FileExists(t, filepath.Join(dir, "analysis_stack_search.png"))
	assert.FileExists(t, filepath.Join(dir, "analysis_queue_search.png"))
	assert.FileExists(t, filepath.Join(dir, "analysis_linkedlist_search.png"))
	assert.FileExists(t, filepath.Join(dir, "complexity_curves.png"))
}

// TestSaveAll_SkipsEmptySeries: empty series get no chart, overlays and
// analysis panels with no measurable members are skipped rather than
// failed, and the data-free reference curves are still written.
func TestSaveAll_SkipsEmptySeries(t *testing.T) {
	dir := t.TempDir()
	data := map[string]perf.Series{
		"measured": series(),
		"empty":    {},
	}

	written, err := viz.SaveAll(data, dir)
	require.NoError(t, err)

	assert.Len(t, written, 2, "one growth chart plus the reference curves")
	assert.FileExists(t, filepath.Join(dir, "growth_measured.png"))
	assert.FileExists(t, filepath.Join(dir, "complexity_curves.png"))
	assert.NoFileExists(t, filepath.Join(dir, "growth_empty.png"))
}

// TestSavePredictedVsActual_WritesPNG renders the two-panel analysis
// chart and checks a non-empty file lands at the requested path.
func TestSavePredictedVsActual_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.png")

	require.NoError(t, viz.SavePredictedVsActual("linkedlist_search", series(), path))

	info, err := os.Stat(path)
	require.NoError(t, err, "analysis chart must exist")
	assert.Greater(t, info.Size(), int64(0), "analysis chart must not be empty")
}

// TestSavePredictedVsActual_SinglePoint: a one-point series has no
// ratios but still gets its predicted-vs-actual panel.
func TestSavePredictedVsActual_SinglePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.png")
	single := perf.Series{
		Sizes:      []int{100},
		Times:      []float64{0.001},
		Errors:     []float64{0.0001},
		Complexity: "O(1)",
	}

	require.NoError(t, viz.SavePredictedVsActual("stack_peek", single, path))
	assert.FileExists(t, path)
}

// TestSavePredictedVsActual_EmptySeries rejects a series with no points.
func TestSavePredictedVsActual_EmptySeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := viz.SavePredictedVsActual("empty", perf.Series{}, path)
	assert.ErrorIs(t, err, viz.ErrEmptySeries)
	assert.NoFileExists(t, path)
}

// TestSaveComplexityCurves_WritesPNG renders the theoretical reference
// chart, which needs no measured data.
func TestSaveComplexityCurves_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.png")

	require.NoError(t, viz.SaveComplexityCurves(1000, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestSaveComplexityCurves_BadMax rejects a max size too small to plot.
func TestSaveComplexityCurves_BadMax(t *testing.T) {
	err := viz.SaveComplexityCurves(1, filepath.Join(t.TempDir(), "bad.png"))
	assert.Error(t, err)
}
