package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job description text file into an extraction record",
	Long:  "Parse a job posting text file into a canonical extraction record JSON with skills, qualifications and ranked keyterms.",
	RunE:  runParseJob,
}

var (
	jobInputFile  string
	jobOutputFile string
)

func init() {
	parseJobCmd.Flags().StringVarP(&jobInputFile, "in", "i", "", "Path to job description text file (required)")
	parseJobCmd.Flags().StringVarP(&jobOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := ingestion.LoadDocument(jobInputFile)
	if err != nil {
		return err
	}

	record, err := a.parser.ParseJobDescription(ctx, doc.Text)
	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}

	return writeRecord(a, record, jobOutputFile)
}
