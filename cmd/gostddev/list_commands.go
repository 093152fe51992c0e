// cmd/gostddev/list_commands.go
package gostddev

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// listCmd only groups the listing subcommands; run on its own it prints help.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print information about gostddev itself",
	Long:  `Subcommands of 'list' print information about the gostddev binary rather than running a session.`,
}

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(listCmd)
}

// listAllCommands walks the command tree from root and writes each command
// path and short description in a padded, two-column layout.
func listAllCommands(w io.Writer, root *cobra.Command) {
	entries := collectCommandData(root, "", "")

	width := 0
	for _, e := range entries {
		width = max(width, len(e.path))
	}

	fmt.Fprintln(w, "Commands and Subcommands:")
	for _, e := range entries {
		fmt.Fprintf(w, "  %s%s%s\n", e.path, strings.Repeat(" ", width-len(e.path)+2), e.description)
	}
}

type commandInfo struct {
	path        string
	description string
}

// collectCommandData flattens the command tree into path/description pairs,
// indenting each level by two spaces. Cobra's generated help and completion
// commands are skipped.
func collectCommandData(cmd *cobra.Command, parentPath string, indent string) []commandInfo {
	fullPath := cmd.Name()
	if parentPath != "" {
		fullPath = parentPath + " " + cmd.Name()
	}

	all := []commandInfo{{path: indent + fullPath, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		all = append(all, collectCommandData(sub, fullPath, indent+"  ")...)
	}
	return all
}
