// internal/charts/confidence.go
package charts

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/eaicharts/internal/report"
)

// DecisionConfidence is a 2×2 panel of the decision mix, the confidence
// distribution, confidence per decision and a system summary.
type DecisionConfidence struct{}

func (DecisionConfidence) Name() string     { return "decision confidence analysis" }
func (DecisionConfidence) Filename() string { return "decision_analysis.png" }

var systemColors = []color.Color{green, blue, orange, purple}

// systemMetrics puts four differently scaled figures on one axis.
func systemMetrics(s report.Summary) []namedValue {
	return []namedValue{
		{Name: "Success Rate (%)", Value: s.SuccessRate, Format: "%.1f"},
		{Name: "Avg Confidence", Value: s.AverageConfidence * 100, Format: "%.1f"},
		{Name: "Total Requests", Value: float64(s.TotalRequests), Format: "%.1f"},
		{Name: "Avg Response Time (s)", Value: report.Seconds(s.AverageResponseTime), Format: "%.1f"},
	}
}

// confidenceBoxes builds one box per decision label over its reported confidences.
func confidenceBoxes(groups []report.LabeledValues) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Confidence Score by Decision Type"
	p.Y.Label.Text = "Confidence Score"
	p.Add(plotter.NewGrid())

	labels := make([]string, len(groups))
	for i, g := range groups {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, err
		}
		box.FillColor = paletteColor(boxPalette, i)
		p.Add(box)
		labels[i] = g.Label
	}
	p.NominalX(labels...)
	return p, nil
}

func (DecisionConfidence) Build(r *report.BenchmarkReport) (*Figure, error) {
	sum := r.Results.Summary

	pie, _, err := piePanel("Decision Distribution", sum.DecisionDistribution)
	if err != nil {
		return nil, err
	}
	hist, _, err := histogramPanel("Confidence Score Distribution", "Confidence Score",
		r.PositiveConfidences(), lightGreen, "Mean: %.2f")
	if err != nil {
		return nil, err
	}
	boxes, err := confidenceBoxes(r.ConfidenceByDecision())
	if err != nil {
		return nil, err
	}
	system, err := barPanel("System Performance Summary", "Value", systemMetrics(sum), systemColors)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Title: "EAI Decision Making Analysis",
		Panels: [][]*plot.Plot{
			{pie, hist},
			{boxes, system},
		},
	}, nil
}
