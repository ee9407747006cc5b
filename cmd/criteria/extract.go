package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/criteria-scorer/internal/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the top 5 criteria from a job description",
	RunE:  runExtract,
}

var (
	extractFile string
	extractText string
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to the job description (.pdf or plain text)")
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Job description text")
	extractCmd.MarkFlagsMutuallyExclusive("file", "text")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extractFile == "" && extractText == "" {
		return errors.New("must provide either --file or --text")
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.logger.Sync()
	}()

	jobDescription := extractText
	if extractFile != "" {
		if jobDescription, err = readDocument(extractFile, a.pdfParser); err != nil {
			return err
		}
	}

	criteria, err := a.extractor.Extract(cmd.Context(), jobDescription)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), models.ExtractCriteriaResponse{
		Status:   "success",
		Message:  fmt.Sprintf("Extracted %d criteria", len(criteria)),
		Criteria: criteria,
	})
}
