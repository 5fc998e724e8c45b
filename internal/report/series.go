// internal/report/series.go
package report

import (
	"gonum.org/v1/gonum/stat"
)

// DecisionGroup lists the sequence indices of records that share a decision label.
type DecisionGroup struct {
	Label   string
	Indices []int
}

// LabeledValues pairs a decision label with values drawn from its records.
type LabeledValues struct {
	Label  string
	Values []float64
}

// Records returns the load-test records in sequence order.
func (r *BenchmarkReport) Records() []TestResult {
	return r.Results.LoadTestResults
}

// ResponseSeconds returns every record's response time in seconds.
func (r *BenchmarkReport) ResponseSeconds() []float64 {
	records := r.Records()
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i] = Seconds(rec.ResponseTime)
	}
	return out
}

// Confidences returns every record's confidence, 0 where none was reported.
func (r *BenchmarkReport) Confidences() []float64 {
	records := r.Records()
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i] = rec.Confidence
	}
	return out
}

// PositiveConfidences returns only the confidences that were actually reported.
func (r *BenchmarkReport) PositiveConfidences() []float64 {
	var out []float64
	for _, rec := range r.Records() {
		if rec.Confidence > 0 {
			out = append(out, rec.Confidence)
		}
	}
	return out
}

// DecisionGroups groups records by decision label in first-seen order.
func (r *BenchmarkReport) DecisionGroups() []DecisionGroup {
	var groups []DecisionGroup
	index := make(map[string]int)
	for i, rec := range r.Records() {
		g, ok := index[rec.Decision]
		if !ok {
			g = len(groups)
			index[rec.Decision] = g
			groups = append(groups, DecisionGroup{Label: rec.Decision})
		}
		groups[g].Indices = append(groups[g].Indices, i)
	}
	return groups
}

// ConfidenceByDecision groups reported confidences by decision label in first-seen order.
// Labels whose records carry no confidence are omitted.
func (r *BenchmarkReport) ConfidenceByDecision() []LabeledValues {
	var groups []LabeledValues
	index := make(map[string]int)
	for _, rec := range r.Records() {
		if rec.Confidence <= 0 {
			continue
		}
		g, ok := index[rec.Decision]
		if !ok {
			g = len(groups)
			index[rec.Decision] = g
			groups = append(groups, LabeledValues{Label: rec.Decision})
		}
		groups[g].Values = append(groups[g].Values, rec.Confidence)
	}
	return groups
}

// Mean returns the arithmetic mean of xs or ErrEmptySeries.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySeries
	}
	return stat.Mean(xs, nil), nil
}

// DistributionMismatch reports how far the decision distribution and the record
// count drift from TotalRequests. Both are zero when the report is self-consistent.
func (r *BenchmarkReport) DistributionMismatch() (distribution, records int) {
	total := r.Results.Summary.TotalRequests
	return r.Results.Summary.DecisionDistribution.Total() - total, len(r.Records()) - total
}
