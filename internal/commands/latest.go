// internal/commands/latest.go
package eaicharts

import (
	"errors"
	"fmt"

	"github.com/mwiater/eaicharts/internal/report"
	"github.com/spf13/cobra"
)

// latestCmd prints the report a render without arguments would use.
var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show which benchmark report would be rendered",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return errors.New("configuration not loaded")
		}
		path, err := report.Latest(cfg.ReportsDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
}
