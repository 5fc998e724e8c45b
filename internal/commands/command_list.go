package eaicharts

import (
	"fmt"
	"io"
	"strings"
)

// commandRow is one line of the command listing.
type commandRow struct {
	Path        string
	Description string
}

// printCommands prints rows in two aligned columns.
func printCommands(out io.Writer, rows []commandRow) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Path))
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for _, r := range rows {
		fmt.Fprintf(out, "  %s%s%s\n", r.Path, strings.Repeat(" ", width-len(r.Path)+2), r.Description)
	}
}
