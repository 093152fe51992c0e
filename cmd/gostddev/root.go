// cmd/gostddev/root.go
package gostddev

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gostddev/internal/cli"
	"github.com/mwiater/gostddev/internal/config"
)

// runSession is swapped out in tests.
var runSession = func(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	return cli.Run(ctx, cfg, in, out)
}

// rootCmd is the base Cobra command for the gostddev application. Run with
// no arguments it starts an interactive session that reads ten numbers and
// prints their standard deviation.
var rootCmd = &cobra.Command{
	Use:   "gostddev",
	Short: "Compute the standard deviation of ten numbers",
	Long: `gostddev prompts for ten numbers, one per line, re-prompting on anything that is not a valid number,
then prints the numbers entered and their population standard deviation to two decimal places.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		return runSession(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP(config.KeyConfig, "c", "", "config file (JSON, YAML or TOML)")
	flags.String(config.KeyLocale, "en", "language for prompts and results (en, zh)")
	flags.Bool(config.KeyTUI, false, "collect the numbers in a full terminal UI")
	flags.Bool(config.KeyDebug, false, "write debug logs to the log file")
	flags.String(config.KeyLogFile, "debug.log", "debug log file")
}

// settings resolves the configuration for cmd from its flags, GOSTDDEV_*
// environment variables and the optional config file. A fresh viper is used
// per invocation so nothing leaks between runs of the command tree.
func settings(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}
