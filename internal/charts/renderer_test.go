package charts

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/eaicharts/internal/report"
)

// lowRes keeps rendering fast while using the default figure layout.
func lowRes(dir string) Options {
	return Options{OutputDir: dir, DPI: 20}
}

type failingChart struct{ err error }

func (failingChart) Name() string     { return "failing" }
func (failingChart) Filename() string { return "failing.png" }
func (f failingChart) Build(*report.BenchmarkReport) (*Figure, error) {
	return nil, f.err
}

type panickingChart struct{}

func (panickingChart) Name() string     { return "panicking" }
func (panickingChart) Filename() string { return "panicking.png" }
func (panickingChart) Build(*report.BenchmarkReport) (*Figure, error) {
	panic("degenerate input")
}

func TestOptionsDefaults(t *testing.T) {
	opts := NewRenderer(Options{}).Options()
	if opts.OutputDir != DefaultOutputDir || opts.DPI != DefaultDPI || opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Fatalf("unexpected defaults %+v", opts)
	}
}

func TestRenderAllWritesEveryChart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := NewRenderer(lowRes(dir))

	var progress []Progress
	r.OnRendered = func(p Progress) { progress = append(progress, p) }

	files, err := r.RenderAll(defaultSample(), Default())
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(files) != 5 || len(progress) != 5 {
		t.Fatalf("expected 5 files and 5 progress events, got %d and %d", len(files), len(progress))
	}
	if progress[4].Index != 5 || progress[4].Total != 5 {
		t.Fatalf("unexpected final progress %+v", progress[4])
	}
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Fatalf("%s is not a PNG", f)
		}
	}
	assertNoStaging(t, dir)
}

func TestRenderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(lowRes(dir))
	rep := defaultSample()

	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")
	if err := r.Render(rep, DecisionConfidence{}, first); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := r.Render(rep, DecisionConfidence{}, second); err != nil {
		t.Fatalf("Render: %v", err)
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Fatal("expected identical output for identical input")
	}
}

func TestRenderAllFailureLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, DecisionCounts{}.Filename())
	if err := os.WriteFile(existing, []byte("previous run"), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	boom := errors.New("boom")
	list := []Chart{PerformanceDashboard{}, DecisionCounts{}, failingChart{err: boom}}
	files, err := NewRenderer(lowRes(dir)).RenderAll(defaultSample(), list)
	if err == nil {
		t.Fatal("expected batch failure")
	}
	if files != nil {
		t.Fatalf("expected no files on failure, got %v", files)
	}
	var renderErr *RenderError
	if !errors.As(err, &renderErr) || renderErr.Chart != "failing" || !errors.Is(err, boom) {
		t.Fatalf("expected RenderError for failing chart, got %v", err)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "previous run" {
		t.Fatalf("expected existing chart to be left alone, got %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, PerformanceDashboard{}.Filename())); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no partial output, stat returned %v", err)
	}
	assertNoStaging(t, dir)
}

func TestRenderRecoversPanics(t *testing.T) {
	dir := t.TempDir()
	err := NewRenderer(lowRes(dir)).Render(defaultSample(), panickingChart{}, filepath.Join(dir, "p.png"))
	if err == nil || !strings.Contains(err.Error(), "degenerate input") {
		t.Fatalf("expected recovered panic, got %v", err)
	}
}

func TestRenderAllNilReport(t *testing.T) {
	_, err := NewRenderer(lowRes(t.TempDir())).RenderAll(nil, Default())
	if !report.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestRenderSampleFile(t *testing.T) {
	rep, err := report.Load(filepath.Join("..", "report", "testdata", "benchmark_report_2025-08-10_14-03-59.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dir := t.TempDir()
	if _, err := NewRenderer(lowRes(dir)).RenderAll(rep, Default()); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
}

func assertNoStaging(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".staging-") {
			t.Fatalf("staging directory %s left behind", e.Name())
		}
	}
}

func TestRenderAllUnknownDecisionLabel(t *testing.T) {
	rep := sampleReport(
		[]string{"escalate", "approve", "deny", "review", "approve"},
		[]float64{1200, 1800, 1000, 1600, 2000},
		[]float64{0.85, 0.9, 0.75, 0.6, 0.8},
	)
	if got := rep.Results.Summary.DecisionDistribution.Labels(); len(got) != 4 || got[3] != "review" {
		t.Fatalf("expected review as fourth label, got %v", got)
	}

	dir := t.TempDir()
	files, err := NewRenderer(lowRes(dir)).RenderAll(rep, Default())
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(files) != 5 {
		t.Fatalf("expected 5 files, got %d", len(files))
	}
	for _, c := range Default() {
		if _, err := os.Stat(filepath.Join(dir, c.Filename())); err != nil {
			t.Fatalf("expected %s: %v", c.Filename(), err)
		}
	}
	if paletteColor(piePalette, 3) != fallbackColor || paletteColor(boxPalette, 3) != fallbackColor {
		t.Fatal("expected the fourth pie wedge and box to use the fallback color")
	}
}

func TestRenderAllClearsStaleStaging(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, ".staging-123456")
	if err := os.MkdirAll(stale, 0o755); err != nil {
		t.Fatalf("seed staging: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stale, "decision_analysis.png"), []byte("partial"), 0o644); err != nil {
		t.Fatalf("seed staging file: %v", err)
	}

	if _, err := NewRenderer(lowRes(dir)).RenderAll(defaultSample(), []Chart{DecisionCounts{}}); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	assertNoStaging(t, dir)
}
