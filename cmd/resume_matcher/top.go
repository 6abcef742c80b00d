package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the highest scoring resumes stored for a job",
	Long:  "Read persisted match scores and print the best resumes for one job. Without --job, lists the stored job descriptions to pick from.",
	RunE:  runTop,
}

var (
	topJobID string
	topLimit int
)

func init() {
	topCmd.Flags().StringVar(&topJobID, "job", "", "Stored job record ID (omit to list stored jobs)")
	topCmd.Flags().IntVar(&topLimit, "limit", 10, "Number of matches to print")

	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.DatabaseURL == "" {
		return fmt.Errorf("no database configured: set DATABASE_URL or database_url in the config file")
	}

	store, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if topJobID == "" {
		jobs, err := store.ListRecords(ctx, types.DocumentJobDescription)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return fmt.Errorf("no job descriptions stored yet: run match or batch with a database first")
		}
		fmt.Println("Stored job descriptions:")
		for _, job := range jobs {
			fmt.Printf("  %s  %s\n", job.UniqueID, firstLine(job.RawText))
		}
		return nil
	}

	job, err := store.GetRecord(ctx, topJobID)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("no stored record with id %s", topJobID)
	}

	matches, err := store.TopMatches(ctx, topJobID, topLimit)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintRanking(matches)
	return nil
}

// firstLine summarizes a raw document for listing.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
