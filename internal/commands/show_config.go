package eaicharts

import (
	"github.com/mwiater/eaicharts/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			ReportsDir: viper.GetString("reportsDir"),
			OutputDir:  viper.GetString("outputDir"),
			DPI:        viper.GetInt("dpi"),
			Width:      viper.GetFloat64("width"),
			Height:     viper.GetFloat64("height"),
			Debug:      viper.GetBool("debug"),
			LogFile:    viper.GetString("logFile"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
