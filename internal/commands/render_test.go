package eaicharts

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/eaicharts/internal/appconfig"
	"github.com/mwiater/eaicharts/internal/charts"
	"github.com/mwiater/eaicharts/internal/report"
)

const fixtureName = "benchmark_report_2025-08-10_14-03-59.json"

func fixturePath(t *testing.T) string {
	t.Helper()
	return filepath.Join("..", "report", "testdata", fixtureName)
}

// copyFixture places the sample report into a fresh reports directory.
func copyFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(fixturePath(t))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fixtureName), data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return dir
}

func testConfig(reportsDir, outputDir string) appconfig.Config {
	cfg := appconfig.Defaults()
	cfg.ReportsDir = reportsDir
	cfg.OutputDir = outputDir
	cfg.DPI = 20
	return cfg
}

func TestRenderLatestReport(t *testing.T) {
	reportsDir := copyFixture(t)
	outputDir := filepath.Join(t.TempDir(), "charts")

	var out bytes.Buffer
	if err := render(&out, testConfig(reportsDir, outputDir), "", charts.Default()); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, c := range charts.Default() {
		info, err := os.Stat(filepath.Join(outputDir, c.Filename()))
		if err != nil {
			t.Fatalf("expected %s: %v", c.Filename(), err)
		}
		if info.Size() == 0 {
			t.Fatalf("expected %s to be non-empty", c.Filename())
		}
	}

	text := out.String()
	for _, want := range []string{"Loaded benchmark data from", "CHART GENERATION SUMMARY", "Charts Generated: 5"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q, got %s", want, text)
		}
	}
}

func TestRenderExplicitMissingReport(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "charts")
	missing := filepath.Join(t.TempDir(), "nope.json")

	err := render(&bytes.Buffer{}, testConfig(t.TempDir(), outputDir), missing, charts.Default())
	if err == nil {
		t.Fatal("expected an error for a missing report")
	}
	if !report.IsInputError(err) {
		t.Fatalf("expected input error, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(outputDir); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output directory, stat returned %v", statErr)
	}
}

func TestRenderNoReportFound(t *testing.T) {
	err := render(&bytes.Buffer{}, testConfig(t.TempDir(), t.TempDir()), "", charts.Default())
	if !errors.Is(err, report.ErrNoReport) {
		t.Fatalf("expected ErrNoReport, got %v", err)
	}
}

func TestLatestCommand(t *testing.T) {
	reportsDir := copyFixture(t)
	useConfig(t, writeTempConfig(t, "{}"))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--reportsDir", reportsDir, "--logFile", filepath.Join(t.TempDir(), "latest.log"), "latest"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != filepath.Join(reportsDir, fixtureName) {
		t.Fatalf("expected latest report path, got %q", got)
	}
}
