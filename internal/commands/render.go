// internal/commands/render.go
package eaicharts

import (
	"errors"
	"io"

	"github.com/mwiater/eaicharts/internal/appconfig"
	"github.com/mwiater/eaicharts/internal/charts"
	"github.com/mwiater/eaicharts/internal/console"
	"github.com/mwiater/eaicharts/internal/logging"
	"github.com/mwiater/eaicharts/internal/report"
	"github.com/spf13/cobra"
)

// renderCmd is the explicit form of the root command's default action.
var renderCmd = &cobra.Command{
	Use:   "render [report.json]",
	Short: "Render the five report charts",
	Long: `Load a benchmark report, validate it, and write the performance dashboard,
response time analysis, decision distribution, business impact and decision
confidence charts as PNG files into the output directory.

Charts are staged and moved into place only when all of them succeed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return errors.New("configuration not loaded")
	}
	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}
	return render(cmd.OutOrStdout(), *cfg, explicit, charts.Default())
}

// render resolves, loads and renders one report.
func render(out io.Writer, cfg appconfig.Config, explicit string, list []charts.Chart) error {
	path, err := report.Locate(explicit, cfg.ReportsDir)
	if err != nil {
		return err
	}
	rep, err := report.Load(path)
	if err != nil {
		return err
	}
	logging.LogEvent("[REPORT] loaded %s model=%s records=%d", path, rep.Environment.Model, len(rep.Records()))
	if dist, records := rep.DistributionMismatch(); dist != 0 || records != 0 {
		logging.LogDebug("[REPORT] totals differ from TotalRequests: distribution %+d, records %+d", dist, records)
	}

	con := console.New(out)
	con.Loaded(rep)
	if cfg.Debug {
		con.Debug(rep)
	}

	renderer := charts.NewRenderer(charts.Options{
		OutputDir: cfg.OutputDir,
		DPI:       cfg.DPI,
		Width:     cfg.Width,
		Height:    cfg.Height,
	})
	renderer.OnRendered = con.ChartDone

	con.Start(renderer.Options().OutputDir, len(list))
	files, err := renderer.RenderAll(rep, list)
	if err != nil {
		return err
	}
	logging.LogEvent("[REPORT] wrote %d charts to %s", len(files), renderer.Options().OutputDir)

	con.Summary(rep, renderer.Options().OutputDir, files)
	return nil
}
