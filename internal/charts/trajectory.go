// internal/charts/trajectory.go
package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/eaicharts/internal/report"
)

// ResponseTrajectory follows the records in request order through the
// response-time/confidence plane, shading each point by its position.
type ResponseTrajectory struct{}

func (ResponseTrajectory) Name() string     { return "response time analysis" }
func (ResponseTrajectory) Filename() string { return "response_time_analysis_3d.png" }

// trajectoryPoints returns (seconds, confidence) for every record in sequence order.
func trajectoryPoints(r *report.BenchmarkReport) (plotter.XYs, error) {
	secs := r.ResponseSeconds()
	if len(secs) == 0 {
		return nil, report.ErrEmptySeries
	}
	conf := r.Confidences()
	xys := make(plotter.XYs, len(secs))
	for i := range secs {
		xys[i] = plotter.XY{X: secs[i], Y: conf[i]}
	}
	return xys, nil
}

// sequenceColorMap spans request indices 0..n-1.
func sequenceColorMap(n int) palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(math.Max(float64(n-1), 1))
	return cm
}

func (ResponseTrajectory) Build(r *report.BenchmarkReport) (*Figure, error) {
	xys, err := trajectoryPoints(r)
	if err != nil {
		return nil, err
	}
	cm := sequenceColorMap(len(xys))

	p := plot.New()
	p.Title.Text = "Response Time vs Confidence Trajectory"
	p.X.Label.Text = "Response Time (seconds)"
	p.Y.Label.Text = "Confidence Score"
	p.Add(plotter.NewGrid())

	path, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	path.LineStyle = draw.LineStyle{Color: color.Gray{Y: 0x80}, Width: vg.Points(1)}
	p.Add(path)

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	points.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cm.At(float64(i))
		if err != nil {
			c = fallbackColor
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
	}
	p.Add(points)

	bar := plot.New()
	bar.Title.Text = "Request Order"
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})

	sum := r.Results.Summary
	legend := NewTextPanel(panelYel,
		"Legend:",
		"- X-axis: Response Time (seconds) - processing speed",
		"- Y-axis: Confidence Score - decision certainty",
		"- Color: Request Order - blue = earlier, red = later requests",
		"- Line: connects requests in chronological order",
		"",
		"Performance Summary:",
		fmt.Sprintf("- Total Requests: %d", sum.TotalRequests),
		fmt.Sprintf("- Success Rate: %.1f%%", sum.SuccessRate),
		fmt.Sprintf("- Avg Response Time: %.1fs", report.Seconds(sum.AverageResponseTime)),
		fmt.Sprintf("- Avg Confidence: %.2f", sum.AverageConfidence),
	)

	return &Figure{
		Title: "EAI System Response Time Analysis",
		Panels: [][]*plot.Plot{
			{p, bar},
			{textPlot("", legend)},
		},
		ColWidths:  []float64{8, 1},
		RowHeights: []float64{3, 1.4},
	}, nil
}
