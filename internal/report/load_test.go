// internal/report/load_test.go
package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleReport = "testdata/benchmark_report_2025-08-10_14-03-59.json"

func TestLoadSampleReport(t *testing.T) {
	r, err := Load(sampleReport)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if r.Source != sampleReport {
		t.Fatalf("expected source %q, got %q", sampleReport, r.Source)
	}
	if r.Environment.Model != "qwen2.5-7b-instruct-1m" {
		t.Fatalf("unexpected model %q", r.Environment.Model)
	}
	if got := len(r.Records()); got != 5 {
		t.Fatalf("expected 5 records, got %d", got)
	}
	s := r.Results.Summary
	if s.TotalRequests != 5 || s.SuccessRate != 100 || s.AverageResponseTime != 1500 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	labels := s.DecisionDistribution.Labels()
	want := []string{"escalate", "approve", "deny"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("expected labels in document order %v, got %v", want, labels)
	}
	if s.DecisionDistribution.Total() != s.TotalRequests {
		t.Fatalf("distribution total %d != total requests %d", s.DecisionDistribution.Total(), s.TotalRequests)
	}
	if len(r.Results.RequestTypeResults) != 3 {
		t.Fatalf("expected 3 request type results, got %d", len(r.Results.RequestTypeResults))
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{ "Timestamp": `))
	if !errors.Is(err, ErrInvalidReport) {
		t.Fatalf("expected ErrInvalidReport, got %v", err)
	}
}

func TestParseRejectsMissingFields(t *testing.T) {
	cases := map[string]string{
		"no results":     `{"Timestamp":"t","Environment":{"Model":"m"}}`,
		"no model":       `{"Timestamp":"t","Environment":{},"Results":{"LoadTestResults":[],"Summary":{}}}`,
		"no summary key": `{"Timestamp":"t","Environment":{"Model":"m"},"Results":{"LoadTestResults":[],"Summary":{"TotalRequests":1}}}`,
		"wrong type":     `{"Timestamp":"t","Environment":{"Model":"m"},"Results":{"LoadTestResults":"nope","Summary":{}}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			if !errors.Is(err, ErrInvalidReport) {
				t.Fatalf("expected ErrInvalidReport, got %v", err)
			}
		})
	}
}

func TestLoadWrapsInputError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %T", err)
	}
	if inputErr.Path != path {
		t.Fatalf("expected path %q, got %q", path, inputErr.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in chain, got %v", err)
	}
	if !IsInputError(err) {
		t.Fatal("expected IsInputError to be true")
	}
}

func TestParseAcceptsNullConfidence(t *testing.T) {
	doc := `{"Timestamp":"t","Environment":{"Model":"m"},"Results":{
		"LoadTestResults":[{"ResponseTime":10,"Decision":"review","Confidence":null}],
		"Summary":{"TotalRequests":1,"SuccessfulRequests":1,"FailedRequests":0,"SuccessRate":100,
		"AverageResponseTime":10,"MinResponseTime":10,"MaxResponseTime":10,"AverageConfidence":0,
		"DecisionDistribution":{"review":1}}}}`
	r, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if r.Records()[0].Confidence != 0 {
		t.Fatalf("expected confidence 0, got %v", r.Records()[0].Confidence)
	}
}
