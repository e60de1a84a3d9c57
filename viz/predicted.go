package viz

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/structbench/complexity"
	"github.com/katalvlaran/structbench/perf"
)

// analysisBenchmarks get a predicted-vs-actual panel in SaveAll: the
// traversal-bound searches, where the measured curve has a slope worth
// comparing against the prediction.
var analysisBenchmarks = []string{"stack_search", "queue_search", "linkedlist_search"}

// defaultCurveMax is the upper input size for the theoretical reference
// chart emitted by SaveAll.
const defaultCurveMax = 1000

// referenceClasses are the curves drawn by SaveComplexityCurves, in
// ascending growth order.
var referenceClasses = []complexity.Class{
	complexity.O1,
	complexity.OLogN,
	complexity.ON,
	complexity.ONLogN,
	complexity.ON2,
}

// curveValue evaluates one reference class at input size n.
func curveValue(c complexity.Class, n float64) float64 {
	switch c {
	case complexity.O1:
		return 1
	case complexity.OLogN:
		return math.Log2(n)
	case complexity.ON:
		return n
	case complexity.ONLogN:
		return n * math.Log2(n)
	default:
		return n * n
	}
}

// predictedCurve projects a series' predicted complexity label onto the
// measured time scale: flat at the first measured mean for constant-time
// labels, otherwise a linear fit anchored at the last measured point.
// Per-element labels like "O(n) total, O(1) per op" describe bulk work
// and fit the linear branch.
func predictedCurve(s perf.Series) plotter.XYs {
	flat := strings.Contains(s.Complexity, "O(1)") && !strings.Contains(s.Complexity, "O(n)")

	slope := 0.0
	if last := len(s.Sizes) - 1; !flat && s.Sizes[last] > 0 {
		slope = s.Times[last] / float64(s.Sizes[last])
	}

	pts := make(plotter.XYs, len(s.Sizes))
	for i, n := range s.Sizes {
		pts[i].X = float64(n)
		if flat {
			pts[i].Y = s.Times[0]
		} else {
			pts[i].Y = slope * float64(n)
		}
	}

	return pts
}

// seriesRatios rebuilds the consecutive-pair growth ratios from a
// Series. Mean times stand in for the full sample sets, which is enough:
// classification reads only means and sizes.
func seriesRatios(name string, s perf.Series) []perf.GrowthRatio {
	if len(s.Sizes) < 2 {
		return nil
	}

	results := make([]perf.TimingResult, len(s.Sizes))
	for i := range s.Sizes {
		r, err := perf.NewTimingResult(name, s.Sizes[i], []float64{s.Times[i]}, s.Complexity)
		if err != nil {
			return nil
		}
		results[i] = r
	}

	ratios := make([]perf.GrowthRatio, 0, len(results)-1)
	for i := 1; i < len(results); i++ {
		gr, err := perf.Classify(results[i-1], results[i])
		if err != nil {
			continue
		}
		ratios = append(ratios, gr)
	}

	return ratios
}

// ratioPanel builds the bar panel: size ratio beside time ratio for each
// consecutive size pair. An O(n) operation shows matched bar heights.
func ratioPanel(name string, s perf.Series) (*plot.Plot, error) {
	ratios := seriesRatios(name, s)

	p := plot.New()
	p.Title.Text = "Growth ratio analysis"
	p.Y.Label.Text = "ratio"
	if len(ratios) == 0 {
		return p, nil
	}

	sizeVals := make(plotter.Values, len(ratios))
	timeVals := make(plotter.Values, len(ratios))
	labels := make([]string, len(ratios))
	for i, r := range ratios {
		sizeVals[i] = r.SizeRatio
		t := r.TimeRatio
		if math.IsInf(t, 1) {
			// An infinite ratio cannot be drawn; clip to zero.
			t = 0
		}
		timeVals[i] = t
		labels[i] = fmt.Sprintf("%d->%d", r.FromSize, r.ToSize)
	}

	barWidth := vg.Points(12)
	sizeBars, err := plotter.NewBarChart(sizeVals, barWidth)
	if err != nil {
		return nil, fmt.Errorf("analysis %s: building size bars: %w", name, err)
	}
	sizeBars.Offset = -barWidth / 2
	sizeBars.Color = plotutil.Color(2)

	timeBars, err := plotter.NewBarChart(timeVals, barWidth)
	if err != nil {
		return nil, fmt.Errorf("analysis %s: building time bars: %w", name, err)
	}
	timeBars.Offset = barWidth / 2
	timeBars.Color = plotutil.Color(3)

	p.Add(sizeBars, timeBars)
	p.Legend.Add("size ratio", sizeBars)
	p.Legend.Add("time ratio", timeBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	return p, nil
}

// saveSideBySide renders two plots onto one PNG canvas, left and right.
func saveSideBySide(left, right *plot.Plot, path string) error {
	img := vgimg.New(2*chartWidth, chartHeight)
	canvases := plot.Align([][]*plot.Plot{{left, right}}, draw.Tiles{Rows: 1, Cols: 2}, draw.New(img))
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// SavePredictedVsActual writes a two-panel analysis chart for one
// benchmark: the measured curve with error bars against a dashed
// predicted curve on the left, and side-by-side size/time ratio bars for
// each consecutive size pair on the right.
func SavePredictedVsActual(name string, s perf.Series, path string) error {
	pts, err := seriesPoints(s)
	if err != nil {
		return fmt.Errorf("analysis %s: %w", name, err)
	}

	left := newChart(fmt.Sprintf("%s: predicted vs actual", name))

	actual, actualPts, err := plotter.NewLinePoints(pts.XYs)
	if err != nil {
		return fmt.Errorf("analysis %s: building line: %w", name, err)
	}
	actual.Color = plotutil.Color(0)
	actualPts.Color = plotutil.Color(0)

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return fmt.Errorf("analysis %s: building error bars: %w", name, err)
	}

	predicted, err := plotter.NewLine(predictedCurve(s))
	if err != nil {
		return fmt.Errorf("analysis %s: building predicted curve: %w", name, err)
	}
	predicted.Color = plotutil.Color(1)
	predicted.Dashes = plotutil.Dashes(1)

	left.Add(actual, actualPts, bars, predicted)
	left.Legend.Add("actual", actual)
	left.Legend.Add(fmt.Sprintf("predicted (%s)", s.Complexity), predicted)
	left.Legend.Top = true

	right, err := ratioPanel(name, s)
	if err != nil {
		return err
	}

	return saveSideBySide(left, right, path)
}

// SaveComplexityCurves writes the theoretical reference chart: the five
// canonical growth curves from O(1) to O(n²) over input sizes 1..maxN,
// each normalized so its value at maxN is 100. No measured data is
// involved; the chart exists so benchmark curves can be read against the
// canonical shapes.
func SaveComplexityCurves(maxN int, path string) error {
	if maxN < 2 {
		return fmt.Errorf("viz: complexity curves need max size >= 2, got %d", maxN)
	}

	p := newChart("Big-O growth comparison")
	p.Y.Label.Text = "relative operations (normalized)"

	const samples = 100
	for i, c := range referenceClasses {
		scale := curveValue(c, float64(maxN))
		pts := make(plotter.XYs, samples)
		for j := range pts {
			n := 1 + float64(j)*(float64(maxN)-1)/float64(samples-1)
			pts[j].X = n
			pts[j].Y = 100 * curveValue(c, n) / scale
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("complexity curves: %w", err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(string(c), line)
	}
	p.Legend.Top = true

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("complexity curves: %w", err)
	}

	return nil
}
