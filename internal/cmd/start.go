package cmd

import (
	"github.com/spf13/cobra"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start or resume the home-buying questionnaire",
	Long: `Open the interactive home-buying assistant.

Pick any of the five sections from the menu and answer its questions. Each
completed section shows tailored results right away, and once at least one
section is done the full area recommendation becomes available.

Examples:
  # Full-screen terminal UI
  homewhisper start

  # Line-based prompts, also usable with piped input
  homewhisper start --plain
`,
	RunE: runStart,
}

var startPlain bool

func init() {
	startCmd.Flags().BoolVar(&startPlain, "plain", false, "use line-based prompts instead of the full-screen UI")

	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	if !startPlain && !tui.IsInteractive() {
		return errs.NewNotInteractiveError()
	}

	s, err := openSession(cmd, sessionOptions{logToFile: !startPlain})
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := commandContext(cmd)
	if startPlain {
		runner := newPlainRunner(s.wiz, cmd.InOrStdin(), cmd.OutOrStdout(), s.palette)
		runner.defaultArea = s.cfg.UI.DefaultArea
		return runner.Run(ctx)
	}

	return tui.Run(ctx, s.wiz, s.cfg.UI.AltScreen, tui.Options{
		DefaultArea: s.cfg.UI.DefaultArea,
		Logger:      s.logger,
	})
}
