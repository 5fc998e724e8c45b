// internal/report/types.go
package report

// BenchmarkReport is the document written by the load tester after a benchmark run.
type BenchmarkReport struct {
	Timestamp       string      `json:"Timestamp"`
	Environment     Environment `json:"Environment"`
	Results         Results     `json:"Results"`
	Recommendations []string    `json:"Recommendations,omitempty"`

	// Source is the path the report was loaded from. Empty for in-memory reports.
	Source string `json:"-"`
}

// Environment describes the system under test.
type Environment struct {
	Model       string `json:"Model"`
	BaseURL     string `json:"BaseUrl,omitempty"`
	LLMProvider string `json:"LLMProvider,omitempty"`
	Database    string `json:"Database,omitempty"`
}

// Results groups the per-request records and the aggregated summary.
type Results struct {
	HealthCheck        *TestResult           `json:"HealthCheck,omitempty"`
	SingleRequest      *TestResult           `json:"SingleRequest,omitempty"`
	LoadTestResults    []TestResult          `json:"LoadTestResults"`
	RequestTypeResults map[string]TestResult `json:"RequestTypeResults,omitempty"`
	Summary            Summary               `json:"Summary"`
}

// TestResult is a single evaluated request. ResponseTime is in milliseconds and
// a Confidence of 0 means the decision carried no confidence score.
type TestResult struct {
	Success      *bool   `json:"Success,omitempty"`
	ResponseTime float64 `json:"ResponseTime"`
	Decision     string  `json:"Decision"`
	Confidence   float64 `json:"Confidence"`
	Reasoning    string  `json:"Reasoning,omitempty"`
	Error        string  `json:"Error,omitempty"`
}

// Summary holds the aggregates computed by the load tester. Response times are milliseconds.
type Summary struct {
	TotalRequests        int          `json:"TotalRequests"`
	SuccessfulRequests   int          `json:"SuccessfulRequests"`
	FailedRequests       int          `json:"FailedRequests"`
	SuccessRate          float64      `json:"SuccessRate"`
	AverageResponseTime  float64      `json:"AverageResponseTime"`
	MinResponseTime      float64      `json:"MinResponseTime"`
	MaxResponseTime      float64      `json:"MaxResponseTime"`
	AverageConfidence    float64      `json:"AverageConfidence"`
	DecisionDistribution Distribution `json:"DecisionDistribution"`
}

// Seconds converts a millisecond value to seconds.
func Seconds(ms float64) float64 {
	return ms / 1000
}
