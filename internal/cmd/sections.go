package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/homewhisper/internal/interview"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List questionnaire sections and their questions",
	Args:  cobra.NoArgs,
	RunE:  runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg, err := cmdCtx.LoadConfig()
	if err != nil {
		return err
	}

	f, err := newFormatter(cmd, cfg.Output.Format, cfg.Output.NoColor)
	if err != nil {
		return err
	}
	return f.Format(SectionsReport{Sections: interview.Catalog()})
}
