package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ocr"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume text file into an extraction record",
	Long:  "Parse a resume text file into a canonical extraction record JSON with contact details, skills, education and ranked keyterms.",
	RunE:  runParseResume,
}

var (
	resumeInputFile    string
	resumeOutputFile   string
	resumeScanned      bool
	resumeSectionsFile string
	resumeExpandLinks  bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&resumeInputFile, "in", "i", "", "Path to resume text file (required)")
	parseResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().BoolVar(&resumeScanned, "scanned", false, "Treat input as OCR output and segment it into sections first")
	parseResumeCmd.Flags().StringVar(&resumeSectionsFile, "sections", "", "Path to OCR sections JSON (section name to text)")
	parseResumeCmd.Flags().BoolVar(&resumeExpandLinks, "expand-links", false, "Fetch extracted http links and merge hrefs from their pages")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := ingestion.LoadDocument(resumeInputFile)
	if err != nil {
		return err
	}

	var record *types.ExtractionRecord
	switch {
	case resumeSectionsFile != "":
		var sections ocr.Sections
		sections, err = ocr.LoadSections(resumeSectionsFile)
		if err != nil {
			return err
		}
		record, err = a.parser.ParseResumeWithSections(ctx, doc.Text, sections)
	case resumeScanned:
		record, err = a.parser.ParseScannedResume(ctx, doc.Text)
	default:
		record, err = a.parser.ParseResume(ctx, doc.Text)
	}
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	return writeRecord(a, record, resumeOutputFile)
}

// writeRecord serializes a record, validates it against the record
// schema when the schema file is reachable, and writes it to the
// output path or stdout.
func writeRecord(a *app, record *types.ExtractionRecord, outputPath string) error {
	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if schemas.ResolveSchemaPath(schemas.RecordSchemaFile) != "" {
		if err := schemas.ValidateRecordJSON(jsonBytes); err != nil {
			return fmt.Errorf("record failed schema validation: %w", err)
		}
	}

	if a.cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRecord(record)
	}

	if outputPath == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(outputPath, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
