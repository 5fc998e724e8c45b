package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Reports Dir: %s\n", cfg.ReportsDir)
	fmt.Fprintf(out, "  Output Dir:  %s\n", cfg.OutputDir)
	fmt.Fprintf(out, "  DPI:         %d\n", cfg.DPI)
	fmt.Fprintf(out, "  Figure Size: %gx%g in\n", cfg.Width, cfg.Height)
	fmt.Fprintf(out, "  Debug:       %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:    %s\n", cfg.LogFilePath())
}
