// internal/commands/list_commands.go
package eaicharts

import (
	"strings"

	"github.com/spf13/cobra"
)

// listCmd groups listing commands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available items",
}

// commandsCmd prints the command tree with each command's short description.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var rows []commandRow
		for _, row := range collectCommands(rootCmd, "", "") {
			if strings.Contains(row.Path, "completion") || strings.Contains(row.Path, "help") {
				continue
			}
			rows = append(rows, row)
		}
		printCommands(cmd.OutOrStdout(), rows)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(listCmd)
}

// collectCommands walks the command tree depth first, indenting each level by two spaces.
func collectCommands(cmd *cobra.Command, parent, indent string) []commandRow {
	path := cmd.Name()
	if parent != "" {
		path = parent + " " + cmd.Name()
	}
	rows := []commandRow{{Path: indent + path, Description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		rows = append(rows, collectCommands(sub, path, indent+"  ")...)
	}
	return rows
}
