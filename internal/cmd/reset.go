package cmd

import (
	"github.com/spf13/cobra"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/tui"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all saved answers",
	Long: `Mark every section as not completed and drop all saved answers.

Examples:
  homewhisper reset
  homewhisper reset --yes
`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

var resetYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(resetCmd)
}

// confirmReset asks before wiping progress. Tests replace it.
var confirmReset = func() (bool, error) {
	if !tui.ShouldPrompt() {
		return false, errs.NewNotInteractiveError().
			WithSuggestion("Pass --yes to reset without a prompt")
	}
	return tui.PromptForConfirmation("Clear all saved answers?", false)
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}
	defer s.Close()

	if !resetYes {
		ok, err := confirmReset()
		if err != nil {
			return err
		}
		if !ok {
			s.palette.Muted.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
			return nil
		}
	}

	if err := s.wiz.Reset(commandContext(cmd)); err != nil {
		return err
	}
	s.palette.Success.Fprintln(cmd.OutOrStdout(), "All answers cleared.")
	return nil
}
