package eaicharts

import "github.com/spf13/cobra"

// showCmd groups read-only inspection commands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show information about the current setup",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
