// cmd/gostddev/show_config.go
package gostddev

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// configCmd implements 'config', which prints the settings a session would
// run with after flags, environment and config file are merged.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `The 'config' command resolves flags, GOSTDDEV_* environment variables and the optional config file, and pretty-prints the result.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		_, err = pp.Fprintln(cmd.OutOrStdout(), cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
