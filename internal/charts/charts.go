// Package charts builds the benchmark report figures on gonum/plot and writes them as PNG files.
package charts

import "github.com/mwiater/eaicharts/internal/report"

// Chart is one fixed figure layout over a benchmark report.
type Chart interface {
	// Name is the human-readable chart name used in progress output.
	Name() string
	// Filename is the fixed PNG file name inside the output directory.
	Filename() string
	// Build extracts the fields the chart needs and lays out its plots.
	Build(r *report.BenchmarkReport) (*Figure, error)
}

// Default returns the five report charts in rendering order.
func Default() []Chart {
	return []Chart{
		PerformanceDashboard{},
		ResponseTrajectory{},
		DecisionCounts{},
		BusinessImpact{},
		DecisionConfidence{},
	}
}
