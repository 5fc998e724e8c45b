// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	debug   bool
)

// Init sends the standard logger to the log file at logPath. An empty path
// discards log output so the console only shows progress lines.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	if logPath == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if dir := filepath.Dir(logPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = file
	log.SetOutput(logFile)
	return nil
}

// Close flushes and closes the log file, restoring stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// SetDebug toggles LogDebug output.
func SetDebug(enabled bool) {
	mu.Lock()
	debug = enabled
	mu.Unlock()
}

// LogEvent writes a formatted line to the log.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogDebug writes a formatted line only when debug logging is enabled.
func LogDebug(format string, args ...any) {
	mu.Lock()
	enabled := debug
	mu.Unlock()
	if !enabled {
		return
	}
	log.Println("[DEBUG] " + fmt.Sprintf(format, args...))
}

// LogChart records the outcome of a single chart render.
func LogChart(chart, status, detail string) {
	log.Println(buildChartMessage(chart, status, detail))
}

func buildChartMessage(chart, status, detail string) string {
	name := strings.TrimSpace(chart)
	if name == "" {
		name = "unknown"
	}
	state := strings.ToUpper(strings.TrimSpace(status))
	if state == "" {
		state = "UNKNOWN"
	}
	parts := []string{"[CHART]"}
	parts = append(parts, fmt.Sprintf("name=%q", name))
	parts = append(parts, fmt.Sprintf("status=%s", state))
	if d := strings.TrimSpace(detail); d != "" {
		parts = append(parts, fmt.Sprintf("detail=%s", d))
	}
	return strings.Join(parts, " ")
}
