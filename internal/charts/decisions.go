// internal/charts/decisions.go
package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"

	"github.com/mwiater/eaicharts/internal/report"
)

// DecisionCounts draws one bar per label of the summary's decision distribution.
type DecisionCounts struct{}

func (DecisionCounts) Name() string     { return "decision distribution" }
func (DecisionCounts) Filename() string { return "decision_analysis_3d.png" }

// decisionBars returns one bar per label in document order. Colors come from
// barPalette by position; labels past its end get fallbackColor.
func decisionBars(r *report.BenchmarkReport) ([]namedValue, []color.Color, error) {
	dist := r.Results.Summary.DecisionDistribution
	if dist.Len() == 0 {
		return nil, nil, report.ErrEmptySeries
	}
	labels := dist.Labels()
	values := make([]namedValue, len(labels))
	colors := make([]color.Color, len(labels))
	for i, label := range labels {
		values[i] = namedValue{Name: label, Value: float64(dist.Count(label)), Format: "%.0f"}
		colors[i] = paletteColor(barPalette, i)
	}
	return values, colors, nil
}

func (DecisionCounts) Build(r *report.BenchmarkReport) (*Figure, error) {
	values, colors, err := decisionBars(r)
	if err != nil {
		return nil, err
	}
	p, err := barPanel("Decision Distribution", "Number of Decisions", values, colors)
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = "Decision Types"

	sum := r.Results.Summary
	dist := sum.DecisionDistribution
	lines := []string{
		"Decision Analysis:",
		fmt.Sprintf("- Total Decisions: %d", dist.Total()),
	}
	for _, label := range dist.Labels() {
		lines = append(lines, fmt.Sprintf("- %s: %d decisions", titleCase(label), dist.Count(label)))
	}
	lines = append(lines,
		fmt.Sprintf("- Success Rate: %.1f%%", sum.SuccessRate),
		fmt.Sprintf("- Avg Confidence: %.2f", sum.AverageConfidence),
		"",
		fmt.Sprintf("Model: %s", r.Environment.Model),
	)

	return &Figure{
		Title: "EAI System Decision Analysis",
		Panels: [][]*plot.Plot{
			{p, textPlot("", NewTextPanel(panelGreen, lines...))},
		},
		ColWidths: []float64{3, 1},
	}, nil
}
