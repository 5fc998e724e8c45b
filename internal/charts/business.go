// internal/charts/business.go
package charts

import (
	"image/color"

	"gonum.org/v1/plot"

	"github.com/mwiater/eaicharts/internal/report"
)

// BusinessImpact is a 2×2 panel of response times, request success,
// decision mix and headline performance metrics.
type BusinessImpact struct{}

func (BusinessImpact) Name() string     { return "business impact analysis" }
func (BusinessImpact) Filename() string { return "business_impact_analysis.png" }

var (
	successColors     = []color.Color{blue, green, red, orange}
	performanceColors = []color.Color{lightGreen, lightBlue, lightCoral, lightYel}
)

// successMetrics mixes counts and a percentage on one axis, as the report summary does.
func successMetrics(s report.Summary) []namedValue {
	return []namedValue{
		{Name: "Total Requests", Value: float64(s.TotalRequests), Format: "%.0f"},
		{Name: "Successful Requests", Value: float64(s.SuccessfulRequests), Format: "%.0f"},
		{Name: "Failed Requests", Value: float64(s.FailedRequests), Format: "%.0f"},
		{Name: "Success Rate", Value: s.SuccessRate, Format: "%.1f"},
	}
}

// performanceMetrics shows response times in seconds next to the confidence score.
func performanceMetrics(s report.Summary) []namedValue {
	return []namedValue{
		{Name: "Min Response Time", Value: report.Seconds(s.MinResponseTime), Format: "%.2f"},
		{Name: "Avg Response Time", Value: report.Seconds(s.AverageResponseTime), Format: "%.2f"},
		{Name: "Max Response Time", Value: report.Seconds(s.MaxResponseTime), Format: "%.2f"},
		{Name: "Avg Confidence", Value: s.AverageConfidence, Format: "%.2f"},
	}
}

func (BusinessImpact) Build(r *report.BenchmarkReport) (*Figure, error) {
	sum := r.Results.Summary

	hist, _, err := histogramPanel("Response Time Distribution", "Response Time (seconds)",
		r.ResponseSeconds(), skyBlue, "Mean: %.1fs")
	if err != nil {
		return nil, err
	}
	success, err := barPanel("Request Success Analysis", "Count / Percentage", successMetrics(sum), successColors)
	if err != nil {
		return nil, err
	}
	pie, _, err := piePanel("Decision Distribution", sum.DecisionDistribution)
	if err != nil {
		return nil, err
	}
	perf, err := barPanel("Performance Metrics Summary", "Time (seconds) / Confidence Score", performanceMetrics(sum), performanceColors)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Title: "EAI System Business Impact Analysis",
		Panels: [][]*plot.Plot{
			{hist, success},
			{pie, perf},
		},
	}, nil
}
