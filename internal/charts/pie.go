// internal/charts/pie.go
package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/eaicharts/internal/report"
)

// Pie draws a pie chart centered in its canvas. gonum/plot has no pie plotter,
// so wedges are filled as polygons approximating each arc.
type Pie struct {
	Values []float64
	Labels []string
	Colors []color.Color

	// StartAngle is where the first wedge begins, in degrees counterclockwise
	// from three o'clock.
	StartAngle float64

	// Radius is the fraction of the half-extent of the canvas used by the pie.
	Radius float64

	draw.LineStyle
	TextStyle text.Style
}

var _ plot.Plotter = (*Pie)(nil)

// NewPie returns a pie over values. Negative values are rejected and an
// all-zero series yields report.ErrEmptySeries.
func NewPie(values []float64, labels []string) (*Pie, error) {
	total := 0.0
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("pie: invalid value %v at %d", v, i)
		}
		total += v
	}
	if total == 0 {
		return nil, report.ErrEmptySeries
	}

	sty := plot.New().Legend.TextStyle
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	return &Pie{
		Values:     append([]float64(nil), values...),
		Labels:     append([]string(nil), labels...),
		Colors:     piePalette,
		StartAngle: 90,
		Radius:     0.8,
		LineStyle:  draw.LineStyle{Color: color.White, Width: vg.Points(1)},
		TextStyle:  sty,
	}, nil
}

// Total returns the sum of all wedge values.
func (pc *Pie) Total() float64 {
	total := 0.0
	for _, v := range pc.Values {
		total += v
	}
	return total
}

// Plot implements the plot.Plotter interface.
func (pc *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	total := pc.Total()
	if total == 0 {
		return
	}
	size := c.Size()
	radius := vg.Length(math.Min(float64(size.X), float64(size.Y))) / 2 * vg.Length(pc.Radius)
	center := c.Center()

	angle := pc.StartAngle * math.Pi / 180
	for i, v := range pc.Values {
		if v == 0 {
			continue
		}
		sweep := v / total * 2 * math.Pi
		pts := wedge(center, radius, angle, sweep)
		c.FillPolygon(paletteColor(pc.Colors, i), pts)
		c.StrokeLines(pc.LineStyle, append(pts, center))

		mid := angle + sweep/2
		pct := fmt.Sprintf("%.1f%%", v/total*100)
		c.FillText(pc.TextStyle, polar(center, radius*0.6, mid), pct)
		if i < len(pc.Labels) {
			c.FillText(pc.TextStyle, polar(center, radius*1.12, mid), pc.Labels[i])
		}
		angle += sweep
	}
}

// wedge returns the outline of a circular sector starting at the center.
func wedge(center vg.Point, radius vg.Length, start, sweep float64) []vg.Point {
	steps := int(math.Ceil(sweep / (2 * math.Pi) * 180))
	if steps < 2 {
		steps = 2
	}
	pts := make([]vg.Point, 0, steps+2)
	pts = append(pts, center)
	for s := 0; s <= steps; s++ {
		pts = append(pts, polar(center, radius, start+sweep*float64(s)/float64(steps)))
	}
	return pts
}

func polar(center vg.Point, r vg.Length, theta float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(theta)),
		Y: center.Y + r*vg.Length(math.Sin(theta)),
	}
}

// piePanel builds a pie of the decision distribution.
func piePanel(title string, dist report.Distribution) (*plot.Plot, *Pie, error) {
	counts := dist.Counts()
	values := make(plotter.Values, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	pie, err := NewPie(values, dist.Labels())
	if err != nil {
		return nil, nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(pie)
	return p, pie, nil
}
