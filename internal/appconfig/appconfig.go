// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultReportsDir is scanned for benchmark reports when no report path is given.
	DefaultReportsDir = ".."
	// DefaultOutputDir receives the rendered charts.
	DefaultOutputDir = "charts"
	// DefaultDPI is the raster resolution of the charts.
	DefaultDPI = 300
	// DefaultWidth is the chart width in inches.
	DefaultWidth = 16.0
	// DefaultHeight is the chart height in inches.
	DefaultHeight = 12.0
	// defaultLogFile is used when no log file is configured.
	defaultLogFile = "eaicharts.log"
)

// Config represents the top-level application configuration.
type Config struct {
	ReportsDir string  `json:"reportsDir,omitempty"`
	OutputDir  string  `json:"outputDir,omitempty"`
	DPI        int     `json:"dpi,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Debug      bool    `json:"debug"`
	LogFile    string  `json:"logFile,omitempty"`
	ConfigPath string  `json:"-"`
}

// Defaults returns a configuration with every default applied.
func Defaults() Config {
	return Config{
		ReportsDir: DefaultReportsDir,
		OutputDir:  DefaultOutputDir,
		DPI:        DefaultDPI,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

// ApplyDefaults fills every unset field with its default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.ReportsDir) == "" {
		c.ReportsDir = DefaultReportsDir
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
}

// Validate rejects settings that cannot produce an image.
func (c Config) Validate() error {
	if c.DPI > 1200 {
		return fmt.Errorf("invalid configuration: dpi %d exceeds 1200", c.DPI)
	}
	if c.Width > 100 || c.Height > 100 {
		return fmt.Errorf("invalid configuration: figure size %gx%g inches exceeds 100 inches", c.Width, c.Height)
	}
	return nil
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// Load reads the application configuration from the specified path. A missing
// file at the default path yields the defaults.
func Load(path string) (Config, error) {
	usingDefault := path == ""
	if usingDefault {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ApplyDefaults()
		if err := config.Validate(); err != nil {
			return Config{}, err
		}
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if usingDefault || path == DefaultConfigPath {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
