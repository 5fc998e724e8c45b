// internal/report/recommendations.go
package report

const (
	minSuccessRate       = 95.0
	maxAverageResponseMs = 2000.0
	maxResponseMs        = 5000.0
	minAverageConfidence = 0.7
	minLoadSuccessRate   = 90.0
)

// EffectiveRecommendations returns the report's own recommendations, or derives
// them from the summary when the report carries none.
func (r *BenchmarkReport) EffectiveRecommendations() []string {
	if len(r.Recommendations) > 0 {
		out := make([]string, len(r.Recommendations))
		copy(out, r.Recommendations)
		return out
	}
	return Recommend(r)
}

// Recommend derives follow-up actions from the summary thresholds.
func Recommend(r *BenchmarkReport) []string {
	s := r.Results.Summary
	var recs []string

	if s.SuccessRate < minSuccessRate {
		recs = append(recs, "Success rate below 95% - investigate failed requests")
	}
	if s.AverageResponseTime > maxAverageResponseMs {
		recs = append(recs, "Average response time > 2s - consider performance optimization")
	}
	if s.MaxResponseTime > maxResponseMs {
		recs = append(recs, "Max response time > 5s - investigate slow requests")
	}
	if s.AverageConfidence < minAverageConfidence {
		recs = append(recs, "Low average confidence - review LLM prompts and policies")
	}
	if rate, ok := r.LoadSuccessRate(); ok && rate < minLoadSuccessRate {
		recs = append(recs, "Load test success rate < 90% - consider scaling improvements")
	}

	if len(recs) == 0 {
		recs = append(recs, "All metrics look good! System is performing well.")
	}
	return recs
}

// LoadSuccessRate returns the percentage of load-test records marked successful.
// ok is false when no record reports a success flag.
func (r *BenchmarkReport) LoadSuccessRate() (rate float64, ok bool) {
	records := r.Records()
	if len(records) == 0 {
		return 0, false
	}
	succeeded := 0
	for _, rec := range records {
		if rec.Success == nil {
			continue
		}
		ok = true
		if *rec.Success {
			succeeded++
		}
	}
	if !ok {
		return 0, false
	}
	return float64(succeeded) / float64(len(records)) * 100, true
}
