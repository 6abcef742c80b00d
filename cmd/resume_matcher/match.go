package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against one job description",
	Long:  "Parse a resume and a job description, then score their compatibility. Required skills default to the skills extracted from the job posting.",
	RunE:  runMatch,
}

var (
	matchResumeFile    string
	matchJobFile       string
	matchRequired      []string
	matchResumeScanned bool
)

func init() {
	matchCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "Path to job description text file (required)")
	matchCmd.Flags().StringSliceVar(&matchRequired, "required", nil, "Required skills (default: skills extracted from the job)")
	matchCmd.Flags().BoolVar(&matchResumeScanned, "scanned", false, "Treat the resume as OCR output")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	resumeDoc, err := ingestion.LoadDocument(matchResumeFile)
	if err != nil {
		return err
	}
	jobDoc, err := ingestion.LoadDocument(matchJobFile)
	if err != nil {
		return err
	}

	candidate, err := parseResumeDoc(ctx, a, resumeDoc.Text, matchResumeScanned)
	if err != nil {
		return err
	}
	job, err := a.parser.ParseJobDescription(ctx, jobDoc.Text)
	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}

	required := matchRequired
	if len(required) == 0 {
		required = job.Skills
	}

	result := a.engine.Match(candidate, job, required)

	if a.cfg.DatabaseURL != "" {
		store, err := db.Connect(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		if err := store.SaveRecord(ctx, candidate); err != nil {
			return err
		}
		if err := store.SaveRecord(ctx, job); err != nil {
			return err
		}
		if err := store.SaveMatch(ctx, result); err != nil {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintMatch(result)
	return nil
}

func parseResumeDoc(ctx context.Context, a *app, text string, scanned bool) (*types.ExtractionRecord, error) {
	if scanned {
		return a.parser.ParseScannedResume(ctx, text)
	}
	return a.parser.ParseResume(ctx, text)
}
