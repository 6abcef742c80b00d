package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/batch"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/keyterms"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of resumes against one job description",
	Long:  "Parse every resume in a directory, score each against the job description, and print a ranking. Documents that fail to parse are skipped with a warning.",
	RunE:  runBatch,
}

var (
	batchResumeDir string
	batchJobFile   string
	batchTop       int
)

func init() {
	batchCmd.Flags().StringVar(&batchResumeDir, "resumes", "", "Directory of resume text files (required)")
	batchCmd.Flags().StringVar(&batchJobFile, "job", "", "Path to job description text file (required)")
	batchCmd.Flags().IntVar(&batchTop, "top", 10, "Number of ranked candidates to print")
	_ = batchCmd.MarkFlagRequired("resumes")
	_ = batchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	jobDoc, err := ingestion.LoadDocument(batchJobFile)
	if err != nil {
		return err
	}
	job, err := a.parser.ParseJobDescription(ctx, jobDoc.Text)
	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}

	docs, err := ingestion.LoadDirectory(batchResumeDir)
	if err != nil {
		return err
	}

	items, err := batch.Run(ctx, docs, a.cfg.Workers, a.parser.ParseResume, a.logger)
	if err != nil {
		return err
	}

	// With a corpus in hand, rescore the job's keywords by how much
	// they distinguish it from the resume pool.
	records := batch.Records(items)
	corpus := make([]string, 0, len(records)+1)
	for _, record := range records {
		corpus = append(corpus, record.CleanText)
	}
	corpus = append(corpus, job.CleanText)
	if terms := keyterms.TFIDF(corpus, len(corpus)-1); len(terms) > 0 {
		n := keyterms.DefaultTopN
		if len(terms) < n {
			n = len(terms)
		}
		kw := make([]string, 0, n)
		for _, term := range terms[:n] {
			kw = append(kw, term.Term)
		}
		job.ExtractedKeywords = kw
	}

	failed := len(items) - len(records)
	results := make([]types.MatchResult, 0, len(records))
	for _, record := range records {
		results = append(results, a.engine.Match(record, job, job.Skills))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if a.cfg.DatabaseURL != "" {
		if err := persistBatch(ctx, a, job, items, results); err != nil {
			return err
		}
	}

	if len(results) > batchTop {
		results = results[:batchTop]
	}
	observability.NewPrinter(os.Stdout).PrintRanking(results)

	if failed > 0 {
		a.logger.Warn("some documents were skipped", zap.Int("failed", failed))
	}
	return nil
}

func persistBatch(ctx context.Context, a *app, job *types.ExtractionRecord, items []batch.Item, results []types.MatchResult) error {
	store, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}
	if err := store.SaveRecord(ctx, job); err != nil {
		return err
	}
	for _, item := range items {
		if item.Err != nil {
			continue
		}
		if err := store.SaveRecord(ctx, item.Record); err != nil {
			return err
		}
	}
	for _, result := range results {
		if err := store.SaveMatch(ctx, result); err != nil {
			return err
		}
	}
	return nil
}
