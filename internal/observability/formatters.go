// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of an extraction record.
func (p *Printer) PrintRecord(record *types.ExtractionRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ID:    %s\n", record.UniqueID))
	sb.WriteString(fmt.Sprintf("Type:  %s\n", record.DocType))
	if len(record.Name) > 0 {
		sb.WriteString(fmt.Sprintf("Name:  %s\n", record.Name[0]))
	}
	if len(record.Emails) > 0 {
		sb.WriteString(fmt.Sprintf("Email: %s\n", record.Emails[0]))
	}
	if record.Phones != "" {
		sb.WriteString(fmt.Sprintf("Phone: %s\n", record.Phones))
	}

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Skills[i]))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	if len(record.Keyterms) > 0 {
		sb.WriteString("\nTop keyterms:\n")
		count := min(len(record.Keyterms), maxItemsToShow)
		for i := 0; i < count; i++ {
			kt := record.Keyterms[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.3f)\n", kt.Phrase, kt.Score))
		}
	}

	title := "PARSED RESUME"
	if record.DocType == types.DocumentJobDescription {
		title = "PARSED JOB DESCRIPTION"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs one scored resume/job pairing.
func (p *Printer) PrintMatch(result types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume: %s\n", result.ResumeID))
	sb.WriteString(fmt.Sprintf("Job:    %s\n", result.JobID))
	sb.WriteString(fmt.Sprintf("Score:  %.2f", result.Score))
	p.printBox("MATCH SCORE", sb.String())
}

// PrintRanking outputs a batch of match results, best first, assuming
// the caller sorted them.
func (p *Printer) PrintRanking(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, result := range results {
		sb.WriteString(fmt.Sprintf("%2d. %s  %.2f\n", i+1, result.ResumeID, result.Score))
	}
	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}
