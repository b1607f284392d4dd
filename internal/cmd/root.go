package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "homewhisper",
	Short: "Terminal home-buying assistant",
	Long: `homewhisper walks you through five short questionnaires about the home you
are looking for: budget and features, neighborhood demographics, development,
transportation and smart home technology.

Complete any section to get personalized recommendations. Your progress is
saved automatically and picked up the next time you start.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is canceled on
// interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.homewhisper/config.yaml)")
	flags.String("store", "", "storage backend: file, sqlite or memory")
	flags.String("data-dir", "", "directory holding saved progress")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("format", "", "output format: text, json or yaml")
	flags.Bool("no-color", false, "disable colored output")
}
