package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/storage"
	"github.com/felixgeelhaar/homewhisper/internal/wizard"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show questionnaire progress",
	Long: `Display which sections are completed and how many questions each has answers for.

Examples:
  # Display status in default text format
  homewhisper status

  # Output as JSON for scripting
  homewhisper status --format json

  # Keep watching while the questionnaire runs in another terminal
  homewhisper status --watch
`,
	RunE: runStatus,
}

var statusWatch bool

func init() {
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "reprint whenever saved progress changes (file store only)")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}
	defer s.Close()

	if err := printStatus(cmd, s); err != nil {
		return err
	}
	if !statusWatch {
		return nil
	}

	fs, ok := s.store.(*storage.FileStore)
	if !ok {
		return errs.New(errs.ErrCodeStoreOpen, fmt.Sprintf("--watch needs the file store, not %q", s.cfg.Store.Backend)).
			WithSuggestion("Run with --store file")
	}

	ctx := commandContext(cmd)
	changes, err := fs.Watch(ctx, wizard.ProgressKey)
	if err != nil {
		return err
	}
	s.palette.Muted.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n\n", fs.PathFor(wizard.ProgressKey))

	for range changes {
		s.wiz.Initialize(ctx)
		fmt.Fprintln(cmd.OutOrStdout())
		if err := printStatus(cmd, s); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func printStatus(cmd *cobra.Command, s *session) error {
	f, err := s.formatter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return f.Format(newStatusReport(s.wiz.Progress(), s.cfg.Store.Backend, s.cfg.Store.DataDir))
}
