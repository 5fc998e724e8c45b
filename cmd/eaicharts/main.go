// cmd/eaicharts/main.go
package main

import (
	eaicharts "github.com/mwiater/eaicharts/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	setVersionInfo = eaicharts.SetVersionInfo
	executeCmd     = eaicharts.Execute
)

// main injects build metadata and hands control to the root command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
