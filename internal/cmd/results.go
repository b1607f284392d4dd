package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/recommend"
	"github.com/felixgeelhaar/homewhisper/internal/report"
)

var resultsCmd = &cobra.Command{
	Use:   "results [section]",
	Short: "Show recommendations for completed sections",
	Long: `Show the results of one completed section, or of all completed sections
together with the full area recommendation.

Examples:
  # All results plus the full recommendation
  homewhisper results

  # One section
  homewhisper results transportation

  # Highlight another area
  homewhisper results --area eastside

  # Export a report (.md or .html)
  homewhisper results --out report.html
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

var (
	resultsOut  string
	resultsArea string
)

func init() {
	resultsCmd.Flags().StringVarP(&resultsOut, "out", "o", "", "write a Markdown or HTML report to this file")
	resultsCmd.Flags().StringVar(&resultsArea, "area", "", "area for the full recommendation (westside, downtown, eastside, suburbs)")

	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}
	defer s.Close()

	area := resultsArea
	if area == "" {
		area = s.cfg.UI.DefaultArea
	}
	if _, ok := recommend.AreaByID(area); !ok {
		return errs.NewInvalidTargetError(area).
			WithSuggestion("Use one of: westside, downtown, eastside, suburbs")
	}

	var out ResultsReport
	if len(args) == 1 {
		section, err := domain.ParseSection(args[0])
		if err != nil || !section.IsData() {
			return errs.NewSectionUnknownError(args[0])
		}
		progress := s.wiz.Progress()
		if !progress[section].Completed {
			return errs.New(errs.ErrCodeWizardNoCompleted, fmt.Sprintf("section %s is not completed yet", section)).
				WithSuggestion("Run 'homewhisper start' and answer its questions")
		}
		out.Results = append(out.Results, recommend.ForSection(section, progress[section].Answers))
	} else {
		if err := s.wiz.SelectSection(domain.TargetResults); err != nil {
			return err
		}
		full := recommend.FullRecommendation(s.wiz.AllAnswers(), area)
		out.Results = recommend.ForProgress(s.wiz.Progress())
		out.Full = &full
	}

	if resultsOut != "" {
		opts := report.Options{Area: area, GeneratedAt: time.Now()}
		if err := report.WriteFile(resultsOut, s.wiz.Progress(), opts); err != nil {
			return err
		}
		s.logger.InfoContext(commandContext(cmd), "report written", "path", resultsOut)
		s.palette.Success.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", resultsOut)
		return nil
	}

	f, err := s.formatter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return f.Format(out)
}
