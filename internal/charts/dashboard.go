// internal/charts/dashboard.go
package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/eaicharts/internal/report"
)

// PerformanceDashboard places every record at (response time, confidence,
// request sequence). The three coordinates are drawn as orthogonal projections
// next to a metrics panel.
type PerformanceDashboard struct{}

func (PerformanceDashboard) Name() string     { return "performance dashboard" }
func (PerformanceDashboard) Filename() string { return "performance_dashboard_3d.png" }

// dashboardPoint is one record in the dashboard's three coordinates.
type dashboardPoint struct {
	Seconds    float64
	Confidence float64
	Sequence   float64
}

// dashboardSeries is every record sharing a decision label.
type dashboardSeries struct {
	Label  string
	Style  decisionStyle
	Points []dashboardPoint
}

// legend returns the legend entry, e.g. "Escalate Decision (12)".
func (s dashboardSeries) legend() string {
	return fmt.Sprintf("%s Decision (%d)", titleCase(s.Label), len(s.Points))
}

func dashboardData(r *report.BenchmarkReport) ([]dashboardSeries, error) {
	records := r.Records()
	if len(records) == 0 {
		return nil, report.ErrEmptySeries
	}
	groups := r.DecisionGroups()
	series := make([]dashboardSeries, 0, len(groups))
	for _, g := range groups {
		s := dashboardSeries{Label: g.Label, Style: styleFor(g.Label)}
		for _, i := range g.Indices {
			s.Points = append(s.Points, dashboardPoint{
				Seconds:    report.Seconds(records[i].ResponseTime),
				Confidence: records[i].Confidence,
				Sequence:   float64(i),
			})
		}
		series = append(series, s)
	}
	return series, nil
}

func (PerformanceDashboard) Build(r *report.BenchmarkReport) (*Figure, error) {
	series, err := dashboardData(r)
	if err != nil {
		return nil, err
	}

	type projection struct {
		title, x, y string
		pick        func(dashboardPoint) plotter.XY
	}
	projections := []projection{
		{"Response Time vs Confidence", "Response Time (seconds)", "Confidence Score",
			func(p dashboardPoint) plotter.XY { return plotter.XY{X: p.Seconds, Y: p.Confidence} }},
		{"Response Time by Request Order", "Request Sequence", "Response Time (seconds)",
			func(p dashboardPoint) plotter.XY { return plotter.XY{X: p.Sequence, Y: p.Seconds} }},
		{"Confidence by Request Order", "Request Sequence", "Confidence Score",
			func(p dashboardPoint) plotter.XY { return plotter.XY{X: p.Sequence, Y: p.Confidence} }},
	}

	plots := make([]*plot.Plot, 0, len(projections))
	for n, proj := range projections {
		p := plot.New()
		p.Title.Text = proj.title
		p.X.Label.Text = proj.x
		p.Y.Label.Text = proj.y
		p.Add(plotter.NewGrid())
		for _, s := range series {
			xys := make(plotter.XYs, len(s.Points))
			for i, pt := range s.Points {
				xys[i] = proj.pick(pt)
			}
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, err
			}
			sc.GlyphStyle = draw.GlyphStyle{Color: s.Style.Color, Radius: vg.Points(4), Shape: s.Style.Shape}
			p.Add(sc)
			if n == 0 {
				p.Legend.Add(s.legend(), sc)
			}
		}
		p.Legend.Top = true
		plots = append(plots, p)
	}

	sum := r.Results.Summary
	metrics := NewTextPanel(panelBlue,
		"Performance Metrics:",
		fmt.Sprintf("- Total Requests: %d", sum.TotalRequests),
		fmt.Sprintf("- Success Rate: %.1f%%", sum.SuccessRate),
		fmt.Sprintf("- Avg Response Time: %.1fs", report.Seconds(sum.AverageResponseTime)),
		fmt.Sprintf("- Avg Confidence: %.2f", sum.AverageConfidence),
		fmt.Sprintf("- Model: %s", r.Environment.Model),
	)

	return &Figure{
		Title: "EAI System Performance Dashboard",
		Panels: [][]*plot.Plot{
			{plots[0], plots[1]},
			{plots[2], textPlot("Summary", metrics)},
		},
	}, nil
}
