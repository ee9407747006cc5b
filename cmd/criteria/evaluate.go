package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/criteria-scorer/internal/models"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Extract criteria from a job description and score a resume against them",
	RunE:  runEvaluate,
}

var (
	evaluateJobFile    string
	evaluateResumeFile string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateJobFile, "job", "j", "", "Path to the job description (.pdf or plain text)")
	evaluateCmd.Flags().StringVarP(&evaluateResumeFile, "resume", "r", "", "Path to the resume (.pdf or plain text)")
	_ = evaluateCmd.MarkFlagRequired("job")
	_ = evaluateCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.logger.Sync()
	}()

	jobDescription, err := readDocument(evaluateJobFile, a.pdfParser)
	if err != nil {
		return err
	}

	resume, err := readDocument(evaluateResumeFile, a.pdfParser)
	if err != nil {
		return err
	}

	evaluation, err := a.evaluator.Evaluate(cmd.Context(), jobDescription, resume)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), models.EvaluateResponse{
		Status:   "success",
		Criteria: evaluation.Criteria,
		Scores:   evaluation.Scores.Scores,
	})
}
