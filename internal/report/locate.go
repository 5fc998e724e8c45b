// internal/report/locate.go
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// FilePattern matches the report files written by the load tester.
	FilePattern = "benchmark_report_*.json"
	// fileTimeLayout is the timestamp layout embedded in report file names.
	fileTimeLayout = "2006-01-02_15-04-05"
	filePrefix     = "benchmark_report_"
	fileSuffix     = ".json"
)

type candidate struct {
	path string
	name string
	at   time.Time
}

// Locate returns explicit when it is set, otherwise the most recent report in dir.
func Locate(explicit, dir string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, nil
	}
	return Latest(dir)
}

// Latest returns the newest report file in dir. Recency comes from the timestamp
// embedded in the file name; names that do not carry one fall back to the file's
// modification time. Equal times are broken by name.
func Latest(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	matches, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}

	candidates := make([]candidate, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		name := filepath.Base(path)
		at, ok := FileTimestamp(name)
		if !ok {
			at = info.ModTime()
		}
		candidates = append(candidates, candidate{path: path, name: name, at: at})
	}
	if len(candidates) == 0 {
		return "", &InputError{Path: dir, Err: ErrNoReport}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].at.Equal(candidates[j].at) {
			return candidates[i].at.Before(candidates[j].at)
		}
		return candidates[i].name < candidates[j].name
	})
	return candidates[len(candidates)-1].path, nil
}

// FileTimestamp parses the time embedded in a report file name such as
// benchmark_report_2025-08-10_14-03-59.json. The time is read in local time,
// matching how the load tester formats it.
func FileTimestamp(name string) (time.Time, bool) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, filePrefix) || !strings.HasSuffix(base, fileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(base, filePrefix), fileSuffix)
	at, err := time.ParseInLocation(fileTimeLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}
