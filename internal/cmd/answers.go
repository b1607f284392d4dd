package cmd

import (
	"github.com/spf13/cobra"
)

var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "Print saved answers",
	Long: `Print every saved answer. By default answers from all completed sections are
merged into one list; --by-section keeps them grouped.

Examples:
  homewhisper answers
  homewhisper answers --by-section --format yaml
`,
	Args: cobra.NoArgs,
	RunE: runAnswers,
}

var answersBySection bool

func init() {
	answersCmd.Flags().BoolVar(&answersBySection, "by-section", false, "group answers by section")

	rootCmd.AddCommand(answersCmd)
}

func runAnswers(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}
	defer s.Close()

	report := AnswersReport{}
	if answersBySection {
		report.BySection = s.wiz.AnswersBySection()
	} else {
		report.Answers = s.wiz.AllAnswers()
	}

	f, err := s.formatter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return f.Format(report)
}
