// Package main provides the resume matcher CLI: parse resumes and job
// descriptions into extraction records and score their compatibility.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/parser"
	"github.com/jonathan/resume-matcher/internal/refdata"
	"github.com/jonathan/resume-matcher/internal/similarity"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume and job description matching pipeline",
	Long:  "Resume Matcher extracts structured records from resumes and job postings and scores candidate/job compatibility.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress information")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the long-lived pipeline components commands share.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	parser  *parser.Parser
	engine  *similarity.Engine
	closers []func() error
}

// newApp loads configuration and wires the pipeline. The keyword model
// is only attached when an API key is configured; everything else runs
// offline.
func newApp(ctx context.Context) (*app, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	cfg.WithDefaults()
	if verbose {
		cfg.Verbose = true
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	lib, err := refdata.Load(refdata.Paths{
		SkillsFile:       cfg.SkillsFile,
		UniversitiesFile: cfg.UniversitiesFile,
		TitlesFile:       cfg.TitlesFile,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: log}

	var keywords extraction.KeywordModel
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create keyword model client: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		keywords = llm.NewKeywordExtractor(client, llm.TierLite)
	}

	provider := nlp.NewEngine()
	popts := []parser.Option{parser.WithTopKeyterms(cfg.TopKeyterms)}
	if resumeExpandLinks {
		popts = append(popts, parser.WithLinkExpansion())
	}
	a.parser = parser.New(provider, lib, keywords, log, popts...)
	a.engine = similarity.NewEngine(provider,
		similarity.WithWeightPolicy(similarity.DefaultWeightPolicy{SkillWeight: cfg.SkillWeight}),
		similarity.WithScale(cfg.Scale),
	)
	return a, nil
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
