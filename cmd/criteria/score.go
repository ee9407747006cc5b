package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/criteria-scorer/internal/models"
)

var scoreCmd = &cobra.Command{
	Use:     "score",
	Short:   "Score a resume against a list of criteria",
	Example: `  criteria score --resume jane.pdf --criterion "Python proficiency" --criterion "SQL proficiency"`,
	RunE:    runScore,
}

var (
	scoreResumeFile string
	scoreCriteria   []string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to the resume (.pdf or plain text)")
	scoreCmd.Flags().StringArrayVarP(&scoreCriteria, "criterion", "c", nil, "Criterion to score against (repeatable)")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("criterion")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.logger.Sync()
	}()

	resume, err := readDocument(scoreResumeFile, a.pdfParser)
	if err != nil {
		return err
	}

	scores, err := a.scorer.Score(cmd.Context(), resume, scoreCriteria)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), models.ScoreResumeResponse{
		Status: "success",
		Scores: scores.Scores,
	})
}
