// internal/charts/renderer.go
package charts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mwiater/eaicharts/internal/logging"
	"github.com/mwiater/eaicharts/internal/report"
)

const (
	// DefaultOutputDir is where charts are written when no directory is configured.
	DefaultOutputDir = "charts"
	// DefaultDPI is the raster resolution of every chart.
	DefaultDPI = 300
	// DefaultWidth and DefaultHeight are the figure size in inches.
	DefaultWidth  = 16.0
	DefaultHeight = 12.0

	stagingPrefix = ".staging-"
)

// Options controls where and how figures are rasterized.
type Options struct {
	OutputDir string
	DPI       int
	Width     float64
	Height    float64
}

func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Progress describes one completed chart within a batch.
type Progress struct {
	Index int
	Total int
	Chart string
	File  string
}

// RenderError records which chart failed.
type RenderError struct {
	Chart string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer writes figures as PNG files.
type Renderer struct {
	opts Options

	// OnRendered, when set, is called after each chart has been rasterized.
	OnRendered func(Progress)
}

// NewRenderer returns a Renderer with defaults applied to opts.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// RenderAll builds and writes every chart in order. Files are staged in a
// temporary directory inside the output directory and moved into place only
// after all charts succeed; the first failure aborts the batch and leaves the
// output directory as it was. It returns the final file paths.
func (r *Renderer) RenderAll(rep *report.BenchmarkReport, list []Chart) ([]string, error) {
	if rep == nil {
		return nil, &report.InputError{Err: errors.New("nil report")}
	}
	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create output directory %s: %w", r.opts.OutputDir, err)
	}
	clearStaleStaging(r.opts.OutputDir)
	staging, err := os.MkdirTemp(r.opts.OutputDir, stagingPrefix)
	if err != nil {
		return nil, fmt.Errorf("unable to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	staged := make([]string, 0, len(list))
	for i, c := range list {
		path := filepath.Join(staging, c.Filename())
		if err := r.renderOne(rep, c, path); err != nil {
			logging.LogChart(c.Name(), "failed", err.Error())
			return nil, &RenderError{Chart: c.Name(), Err: err}
		}
		logging.LogChart(c.Name(), "rendered", c.Filename())
		staged = append(staged, path)
		if r.OnRendered != nil {
			r.OnRendered(Progress{Index: i + 1, Total: len(list), Chart: c.Name(), File: c.Filename()})
		}
	}

	final := make([]string, 0, len(staged))
	for _, path := range staged {
		dst := filepath.Join(r.opts.OutputDir, filepath.Base(path))
		if err := os.Rename(path, dst); err != nil {
			return final, fmt.Errorf("unable to move %s into place: %w", filepath.Base(path), err)
		}
		final = append(final, dst)
	}
	return final, nil
}

// clearStaleStaging removes staging directories left by a run that was killed mid-batch.
func clearStaleStaging(dir string) {
	stale, _ := filepath.Glob(filepath.Join(dir, stagingPrefix+"*"))
	for _, path := range stale {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := os.RemoveAll(path); err != nil {
				logging.LogEvent("[CHART] unable to remove stale staging directory %s: %v", path, err)
			}
		}
	}
}

// Render builds and writes a single chart to path.
func (r *Renderer) Render(rep *report.BenchmarkReport, c Chart, path string) error {
	if err := r.renderOne(rep, c, path); err != nil {
		return &RenderError{Chart: c.Name(), Err: err}
	}
	return nil
}

func (r *Renderer) renderOne(rep *report.BenchmarkReport, c Chart, path string) (err error) {
	// gonum/plot panics on some degenerate inputs.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("plotting panic: %v", rec)
		}
	}()

	fig, err := c.Build(rep)
	if err != nil {
		return err
	}
	return r.WritePNG(fig, path)
}

// WritePNG rasterizes fig and writes it to path.
func (r *Renderer) WritePNG(fig *Figure, path string) error {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.opts.Width)*vg.Inch, vg.Length(r.opts.Height)*vg.Inch),
		vgimg.UseDPI(r.opts.DPI),
	)
	fig.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	return f.Close()
}
