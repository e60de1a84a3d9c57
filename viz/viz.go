package viz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/structbench/perf"
)

// Default chart dimensions.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// comparisons are the canonical cross-structure overlays SaveAll emits
// alongside the per-benchmark charts.
var comparisons = []struct {
	file  string
	title string
	names []string
}{
	{
		file:  "comparison_search.png",
		title: "Worst-case search across structures",
		names: []string{"stack_search", "queue_search", "linkedlist_search"},
	},
	{
		file:  "comparison_insert.png",
		title: "Bulk insert across structures",
		names: []string{"stack_push", "queue_enqueue", "linkedlist_insert_head"},
	},
}

// errPoints adapts a perf.Series to gonum/plot's XYer + YErrorer pair so
// one value feeds both the line and its error bars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// seriesPoints converts a perf.Series into plot points with symmetric
// std-dev error bars. Returns ErrEmptySeries / ErrMismatchedSeries for
// malformed input.
func seriesPoints(s perf.Series) (errPoints, error) {
	if len(s.Sizes) == 0 {
		return errPoints{}, ErrEmptySeries
	}
	if len(s.Times) != len(s.Sizes) || len(s.Errors) != len(s.Sizes) {
		return errPoints{}, fmt.Errorf("%w: %d sizes, %d times, %d errors",
			ErrMismatchedSeries, len(s.Sizes), len(s.Times), len(s.Errors))
	}

	pts := errPoints{
		XYs:     make(plotter.XYs, len(s.Sizes)),
		YErrors: make(plotter.YErrors, len(s.Sizes)),
	}
	for i, n := range s.Sizes {
		pts.XYs[i].X = float64(n)
		pts.XYs[i].Y = s.Times[i]
		pts.YErrors[i].Low = s.Errors[i]
		pts.YErrors[i].High = s.Errors[i]
	}

	return pts, nil
}

// newChart returns a plot with the house styling applied.
func newChart(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "input size n"
	p.Y.Label.Text = "mean time (s)"
	p.Add(plotter.NewGrid())

	return p
}

// SaveGrowthChart writes one benchmark's growth curve to path: mean time
// against input size, with std-dev error bars and the predicted
// complexity label in the title.
func SaveGrowthChart(name string, s perf.Series, path string) error {
	pts, err := seriesPoints(s)
	if err != nil {
		return fmt.Errorf("chart %s: %w", name, err)
	}

	p := newChart(fmt.Sprintf("%s — predicted %s", name, s.Complexity))

	line, points, err := plotter.NewLinePoints(pts.XYs)
	if err != nil {
		return fmt.Errorf("chart %s: building line: %w", name, err)
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return fmt.Errorf("chart %s: building error bars: %w", name, err)
	}

	p.Add(line, points, bars)
	p.Legend.Add(name, line)
	p.Legend.Top = true

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("chart %s: %w", name, err)
	}

	return nil
}

// SaveComparison overlays the named benchmarks on one chart. Names
// missing from data or carrying empty series are skipped; the chart is
// only written when at least one series survives, otherwise
// ErrEmptySeries is returned.
func SaveComparison(title string, data map[string]perf.Series, names []string, path string) error {
	p := newChart(title)

	plotted := 0
	for _, name := range names {
		s, ok := data[name]
		if !ok || len(s.Sizes) == 0 {
			continue
		}
		pts, err := seriesPoints(s)
		if err != nil {
			return fmt.Errorf("comparison %s: %w", name, err)
		}

		line, points, err := plotter.NewLinePoints(pts.XYs)
		if err != nil {
			return fmt.Errorf("comparison %s: building line: %w", name, err)
		}
		line.Color = plotutil.Color(plotted)
		points.Color = plotutil.Color(plotted)

		p.Add(line, points)
		p.Legend.Add(name, line)
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("comparison %q: %w", title, ErrEmptySeries)
	}
	p.Legend.Top = true

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("comparison %q: %w", title, err)
	}

	return nil
}

// SaveAll writes the full chart set into dir, creating it if needed:
// one growth chart per benchmark, the canonical comparison overlays,
// predicted-vs-actual analysis panels for the search benchmarks, and
// the theoretical reference curves. Returns the written paths in
// deterministic order. Empty series are skipped rather than failed: a
// partial sweep still deserves its charts.
func SaveAll(data map[string]perf.Series, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("viz: creating %s: %w", dir, err)
	}

	names := make([]string, 0, len(data))
	for name, s := range data {
		if len(s.Sizes) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		path := filepath.Join(dir, "growth_"+name+".png")
		if err := SaveGrowthChart(name, data[name], path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	for _, c := range comparisons {
		path := filepath.Join(dir, c.file)
		err := SaveComparison(c.title, data, c.names, path)
		switch {
		case err == nil:
			written = append(written, path)
		case errors.Is(err, ErrEmptySeries):
			// None of this overlay's benchmarks were measured: no chart.
		default:
			return written, err
		}
	}

	for _, name := range analysisBenchmarks {
		s, ok := data[name]
		if !ok || len(s.Sizes) == 0 {
			continue
		}
		path := filepath.Join(dir, "analysis_"+name+".png")
		if err := SavePredictedVsActual(name, s, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	curves := filepath.Join(dir, "complexity_curves.png")
	if err := SaveComplexityCurves(defaultCurveMax, curves); err != nil {
		return written, err
	}
	written = append(written, curves)

	return written, nil
}
