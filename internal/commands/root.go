// internal/commands/root.go
package eaicharts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/mwiater/eaicharts/internal/appconfig"
	"github.com/mwiater/eaicharts/internal/console"
	"github.com/mwiater/eaicharts/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd renders the charts when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "eaicharts [report.json]",
	Short: "Render load-test charts from an EAI benchmark report",
	Long: `Read a benchmark_report_*.json file written by the EAI load tester and render
five PNG charts summarizing response times, confidence and decisions.

When no report path is given, the newest report in the reports directory is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for _, name := range []string{"reportsDir", "outputDir", "logFile"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		if !cmd.Flags().Changed("dpi") {
			_ = cmd.Flags().Set("dpi", strconv.Itoa(viper.GetInt("dpi")))
		}
		for _, name := range []string{"width", "height"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatFloat(viper.GetFloat64(name), 'f', -1, 64))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return err
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetDebug(currentConfig.Debug)

		return nil
	},
	RunE: runRender,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	if err != nil {
		logging.LogEvent("[ERROR] %v", err)
		console.New(rootCmd.ErrOrStderr()).Failure(err)
	}
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging and dump the parsed report")
	rootCmd.PersistentFlags().String("reportsDir", appconfig.DefaultReportsDir, "directory scanned for benchmark_report_*.json when no report is given")
	rootCmd.PersistentFlags().String("outputDir", appconfig.DefaultOutputDir, "directory receiving the rendered charts")
	rootCmd.PersistentFlags().Int("dpi", appconfig.DefaultDPI, "chart resolution in dots per inch")
	rootCmd.PersistentFlags().Float64("width", appconfig.DefaultWidth, "chart width in inches")
	rootCmd.PersistentFlags().Float64("height", appconfig.DefaultHeight, "chart height in inches")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	for _, name := range []string{"debug", "reportsDir", "outputDir", "dpi", "width", "height", "logFile"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig points viper at the config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("reportsDir", appconfig.DefaultReportsDir)
	viper.SetDefault("outputDir", appconfig.DefaultOutputDir)
	viper.SetDefault("dpi", appconfig.DefaultDPI)
	viper.SetDefault("width", appconfig.DefaultWidth)
	viper.SetDefault("height", appconfig.DefaultHeight)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) && (cfgFile == "" || cfgFile == appconfig.DefaultConfigPath) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
