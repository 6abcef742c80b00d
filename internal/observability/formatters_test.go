package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ExtractionRecord{
		UniqueID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		DocType:  types.DocumentResume,
		Name:     []string{"Jane Doe"},
		Emails:   []string{"jane@example.com"},
		Phones:   "123-456-7890",
		Skills:   []string{"Python", "Go", "SQL", "Kafka", "Redis", "Spark", "Airflow"},
		Keyterms: []types.Keyterm{{Phrase: "data pipeline", Score: 0.42}},
	}

	p.PrintRecord(record)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "data pipeline")
}

func TestPrintRecord_JobDescriptionTitle(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecord(&types.ExtractionRecord{
		UniqueID: "id",
		DocType:  types.DocumentJobDescription,
	})

	assert.Contains(t, buf.String(), "PARSED JOB DESCRIPTION")
}

func TestPrintRecord_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecord(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(types.MatchResult{ResumeID: "resume-1", JobID: "job-1", Score: 87.5})
	output := buf.String()

	assert.Contains(t, output, "MATCH SCORE")
	assert.Contains(t, output, "resume-1")
	assert.Contains(t, output, "87.50")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking([]types.MatchResult{
		{ResumeID: "resume-1", Score: 92.1},
		{ResumeID: "resume-2", Score: 54.3},
	})
	output := buf.String()

	assert.Contains(t, output, "RANKED CANDIDATES")
	assert.Contains(t, output, "resume-1")
	assert.Contains(t, output, "92.10")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(nil)

	assert.Empty(t, buf.String())
}
