// internal/console/console_test.go
package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/mwiater/eaicharts/internal/charts"
	"github.com/mwiater/eaicharts/internal/report"
)

func init() {
	color.NoColor = true
}

func sampleReport() *report.BenchmarkReport {
	ok := true
	r := &report.BenchmarkReport{Source: "benchmark_report_2025-08-10_14-03-59.json"}
	r.Environment.Model = "qwen2.5-7b-instruct-1m"
	r.Results.Summary = report.Summary{
		TotalRequests:       100,
		SuccessfulRequests:  97,
		FailedRequests:      3,
		SuccessRate:         97.0,
		AverageResponseTime: 1500,
		AverageConfidence:   0.8234,
	}
	r.Results.RequestTypeResults = map[string]report.TestResult{
		"leave":   {Success: &ok, Decision: "approve", Confidence: 0.95, ResponseTime: 1400},
		"expense": {Success: &ok, Decision: "escalate", Confidence: 0.7, ResponseTime: 2100},
	}
	return r
}

func TestSummaryText(t *testing.T) {
	text := SummaryText(sampleReport(), 5)
	for _, want := range []string{
		"Model: qwen2.5-7b-instruct-1m",
		"Total Requests: 100",
		"Success Rate: 97.0%",
		"Avg Response Time: 1.5s",
		"Avg Confidence: 0.82",
		"Charts Generated: 5",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in summary, got:\n%s", want, text)
		}
	}
}

func TestConsoleRunOutput(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	r := sampleReport()

	c.Loaded(r)
	c.Start("charts", 5)
	c.ChartDone(charts.Progress{Index: 1, Total: 5, Chart: "performance dashboard", File: "performance_dashboard_3d.png"})
	c.Summary(r, "charts", []string{"charts/performance_dashboard_3d.png"})

	out := buf.String()
	for _, want := range []string{
		"Loaded benchmark data from benchmark_report_2025-08-10_14-03-59.json",
		"Created performance dashboard",
		"performance_dashboard_3d.png",
		"CHART GENERATION SUMMARY",
		"EXPENSE",
		"LEAVE",
		"Recommendations",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "EXPENSE") > strings.Index(out, "LEAVE") {
		t.Fatalf("expected request types sorted, got:\n%s", out)
	}
}

func TestConsoleFailure(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Failure(errors.New("boom"))
	if !strings.Contains(buf.String(), "FAILED Failed to generate charts: boom") {
		t.Fatalf("unexpected failure output: %s", buf.String())
	}
}

func TestRequestTypeErrorIsTruncated(t *testing.T) {
	r := sampleReport()
	failed := false
	r.Results.RequestTypeResults["travel"] = report.TestResult{
		Success: &failed,
		Error:   strings.Repeat("upstream timeout ", 10),
	}

	lines := requestTypeLines(r)
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "TRAVEL") || !strings.Contains(last, "fail") {
		t.Fatalf("unexpected travel line %q", last)
	}
	if !strings.HasSuffix(last, "…") {
		t.Fatalf("expected long error to be truncated, got %q", last)
	}
}
