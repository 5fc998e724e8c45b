// internal/console/console.go
// Package console prints human-readable progress and summaries for a render run.
package console

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"

	"github.com/mwiater/eaicharts/internal/charts"
	"github.com/mwiater/eaicharts/internal/report"
	"github.com/mwiater/eaicharts/internal/util"
)

const (
	wrapWidth  = 76
	errorWidth = 60
)

var (
	okLabel   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	dimLabel  = color.New(color.FgHiBlack).SprintFunc()

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Console writes progress lines for a single run.
type Console struct {
	out io.Writer
	bar progress.Model
}

// New returns a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{
		out: out,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(24)),
	}
}

// Loaded announces the report that was read.
func (c *Console) Loaded(r *report.BenchmarkReport) {
	s := r.Results.Summary
	fmt.Fprintf(c.out, "Loaded benchmark data from %s\n", r.Source)
	fmt.Fprintf(c.out, "Model: %s\n", r.Environment.Model)
	fmt.Fprintf(c.out, "Total Requests: %d\n", s.TotalRequests)
	fmt.Fprintf(c.out, "Success Rate: %.1f%%\n", s.SuccessRate)
}

// Start announces the batch.
func (c *Console) Start(outputDir string, total int) {
	fmt.Fprintf(c.out, "Starting chart generation (%d charts)...\n", total)
	fmt.Fprintf(c.out, "Charts directory: %s\n", outputDir)
}

// ChartDone prints one progress line per rendered chart.
func (c *Console) ChartDone(p charts.Progress) {
	pct := 0.0
	if p.Total > 0 {
		pct = float64(p.Index) / float64(p.Total)
	}
	fmt.Fprintf(c.out, "%s %s Created %s %s\n",
		c.bar.ViewAs(pct), okLabel("OK"), p.Chart, dimLabel("("+p.File+")"))
}

// Failure prints the error that aborted the run.
func (c *Console) Failure(err error) {
	fmt.Fprintf(c.out, "%s Failed to generate charts: %v\n", failLabel("FAILED"), err)
}

// Debug dumps the parsed report.
func (c *Console) Debug(r *report.BenchmarkReport) {
	pp.Fprintln(c.out, r)
}

// Summary prints the final box, the generated files, request-type results and recommendations.
func (c *Console) Summary(r *report.BenchmarkReport, outputDir string, files []string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headingStyle.Render("All charts generated successfully!"))
	if abs, err := filepath.Abs(outputDir); err == nil {
		outputDir = abs
	}
	fmt.Fprintf(c.out, "Charts saved in: %s\n", outputDir)
	for _, f := range files {
		fmt.Fprintf(c.out, "  %s\n", filepath.Base(f))
	}

	fmt.Fprintln(c.out, boxStyle.Render(SummaryText(r, len(files))))

	if lines := requestTypeLines(r); len(lines) > 0 {
		fmt.Fprintln(c.out, headingStyle.Render("Request Type Results"))
		for _, line := range lines {
			fmt.Fprintf(c.out, "  %s\n", line)
		}
	}

	fmt.Fprintln(c.out, headingStyle.Render("Recommendations"))
	for _, rec := range r.EffectiveRecommendations() {
		for i, line := range util.WrapWords(rec, wrapWidth) {
			bullet := "-"
			if i > 0 {
				bullet = " "
			}
			fmt.Fprintf(c.out, "  %s %s\n", bullet, line)
		}
	}
}

// SummaryText renders the chart generation summary lines.
func SummaryText(r *report.BenchmarkReport, chartCount int) string {
	s := r.Results.Summary
	lines := []string{
		"CHART GENERATION SUMMARY",
		fmt.Sprintf("Model: %s", r.Environment.Model),
		fmt.Sprintf("Total Requests: %d", s.TotalRequests),
		fmt.Sprintf("Success Rate: %.1f%%", s.SuccessRate),
		fmt.Sprintf("Avg Response Time: %.1fs", report.Seconds(s.AverageResponseTime)),
		fmt.Sprintf("Avg Confidence: %.2f", s.AverageConfidence),
		fmt.Sprintf("Charts Generated: %d", chartCount),
	}
	return strings.Join(lines, "\n")
}

func requestTypeLines(r *report.BenchmarkReport) []string {
	results := r.Results.RequestTypeResults
	if len(results) == 0 {
		return nil
	}
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		res := results[name]
		status := "n/a"
		if res.Success != nil {
			status = failLabel("fail")
			if *res.Success {
				status = okLabel("ok")
			}
		}
		line := fmt.Sprintf("%-10s %s decision=%s confidence=%.2f time=%.0fms",
			strings.ToUpper(name), status, res.Decision, res.Confidence, res.ResponseTime)
		if res.Error != "" {
			line += " error=" + util.TruncateRunes(res.Error, errorWidth)
		}
		lines = append(lines, line)
	}
	return lines
}
