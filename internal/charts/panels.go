// internal/charts/panels.go
package charts

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/eaicharts/internal/report"
)

const histogramBins = 6

// namedValue is a labelled bar.
type namedValue struct {
	Name   string
	Value  float64
	Format string
}

func (nv namedValue) label() string {
	format := nv.Format
	if format == "" {
		format = "%g"
	}
	return fmt.Sprintf(format, nv.Value)
}

// barPanel draws one bar per value at consecutive x positions, each colored from colors.
func barPanel(title, yLabel string, values []namedValue, colors []color.Color) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, report.ErrEmptySeries
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	names := make([]string, len(values))
	xys := make(plotter.XYs, len(values))
	labels := make([]string, len(values))
	maxValue := 0.0
	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v.Value}, vg.Points(40))
		if err != nil {
			return nil, err
		}
		bar.XMin = float64(i)
		bar.Color = paletteColor(colors, i)
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)

		names[i] = v.Name
		xys[i] = plotter.XY{X: float64(i), Y: v.Value}
		labels[i] = v.label()
		maxValue = math.Max(maxValue, v.Value)
	}

	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].XAlign = draw.XCenter
	}
	valueLabels.Offset = vg.Point{Y: vg.Points(4)}
	p.Add(valueLabels)

	p.NominalX(names...)
	p.Y.Min = 0
	// Leave headroom for the value labels.
	p.Y.Max = maxValue * 1.15
	if p.Y.Max == 0 {
		p.Y.Max = 1
	}
	return p, nil
}

// histogramBinsFor splits values into n equal-width bins spanning their range.
func histogramBinsFor(values []float64, n int) ([]plotter.HistogramBin, error) {
	if len(values) == 0 {
		return nil, report.ErrEmptySeries
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	dividers := floats.Span(make([]float64, n+1), lo, hi)
	// stat.Histogram uses half-open bins, so nudge the last edge past the maximum.
	dividers[n] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	bins := make([]plotter.HistogramBin, n)
	for i := range bins {
		bins[i] = plotter.HistogramBin{Min: dividers[i], Max: dividers[i+1], Weight: counts[i]}
	}
	return bins, nil
}

// histogramPanel draws a histogram of values with a dashed line at their mean.
func histogramPanel(title, xLabel string, values []float64, fill color.Color, meanFormat string) (*plot.Plot, float64, error) {
	mean, err := report.Mean(values)
	if err != nil {
		return nil, 0, err
	}
	bins, err := histogramBinsFor(values, histogramBins)
	if err != nil {
		return nil, 0, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())

	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     bins[0].Max - bins[0].Min,
		FillColor: fill,
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(hist)

	peak := 0.0
	for _, b := range bins {
		peak = math.Max(peak, b.Weight)
	}
	meanLine, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: peak}})
	if err != nil {
		return nil, 0, err
	}
	meanLine.LineStyle = draw.LineStyle{
		Color:  red,
		Width:  vg.Points(2),
		Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	}
	p.Add(meanLine)
	p.Legend.Add(fmt.Sprintf(meanFormat, mean), meanLine)
	p.Legend.Top = true
	return p, mean, nil
}
