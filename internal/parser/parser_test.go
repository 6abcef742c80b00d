package parser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/ocr"
	"github.com/jonathan/resume-matcher/internal/refdata"
	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleResume = `John Smith
Senior Software Engineer
john.smith@example.com | 123-456-7890 | https://github.com/jsmith

EXPERIENCE
Acme Corp
Built data pipelines in Python on Kubernetes

EDUCATION
Stanford University
Master of Science in Computer Science

SKILLS
Python, Kubernetes, PostgreSQL
`

const sampleJob = `Senior Data Engineer

We build analytics platforms in Python and SQL.
Requirements: Bachelor of Science in Computer Science or equivalent.
Experience with Kubernetes and PostgreSQL required.
`

type failingKeywordModel struct{}

func (failingKeywordModel) Keywords(context.Context, string) ([]string, error) {
	return nil, errors.New("model unavailable")
}

func newParser(t *testing.T) *Parser {
	t.Helper()
	lib, err := refdata.Load(refdata.Paths{})
	require.NoError(t, err)
	return New(nlp.NewEngine(), lib, nil, nil)
}

func TestParseResume_AssemblesRecord(t *testing.T) {
	p := newParser(t)

	record, err := p.ParseResume(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.NotEmpty(t, record.UniqueID)
	assert.Equal(t, types.DocumentResume, record.DocType)
	assert.Equal(t, sampleResume, record.RawText)
	assert.NotEmpty(t, record.CleanText)

	assert.Contains(t, record.Name, "John Smith")
	assert.Equal(t, []string{"john.smith@example.com"}, record.Emails)
	assert.Equal(t, "123-456-7890", record.Phones)
	assert.Equal(t, []string{"https://github.com/jsmith"}, record.Links)
	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "Kubernetes")
	assert.Contains(t, record.Universities, "stanford university")
	assert.Contains(t, record.EducationTitle, "Master of Science in Computer Science")
	assert.Contains(t, record.Education, "Stanford University")
	assert.Contains(t, record.Experience, "Acme Corp")
	assert.NotEmpty(t, record.Keyterms)
	assert.NotEmpty(t, record.BiGrams)
	assert.NotEmpty(t, record.POSFrequencies)

	// Job-description fields stay absent on resumes.
	assert.Empty(t, record.Qualifications)
	assert.Empty(t, record.ExtractedKeywords)
}

func TestParseResume_UniqueIDsDiffer(t *testing.T) {
	p := newParser(t)

	first, err := p.ParseResume(context.Background(), sampleResume)
	require.NoError(t, err)
	second, err := p.ParseResume(context.Background(), sampleResume)
	require.NoError(t, err)
	assert.NotEqual(t, first.UniqueID, second.UniqueID)
}

func TestParseJobDescription_AssemblesRecord(t *testing.T) {
	p := newParser(t)

	record, err := p.ParseJobDescription(context.Background(), sampleJob)
	require.NoError(t, err)

	assert.Equal(t, types.DocumentJobDescription, record.DocType)
	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "SQL")
	assert.Contains(t, record.Qualifications, "Bachelor of Science in Computer Science")
	assert.NotEmpty(t, record.ExtractedKeywords)

	// Personal fields stay absent on job descriptions.
	assert.Empty(t, record.Name)
	assert.Empty(t, record.Emails)
	assert.Empty(t, record.Phones)
}

func TestParseResume_KeywordModelFailureIsNotFatal(t *testing.T) {
	lib, err := refdata.Load(refdata.Paths{})
	require.NoError(t, err)
	p := New(nlp.NewEngine(), lib, failingKeywordModel{}, nil)

	record, err := p.ParseResume(context.Background(), sampleResume)
	require.NoError(t, err)

	// The dictionary contribution survives the model failure, and so
	// does every other field.
	assert.Contains(t, record.Skills, "Python")
	assert.NotEmpty(t, record.Emails)
}

func TestParseScannedResume_UsesSections(t *testing.T) {
	p := newParser(t)

	record, err := p.ParseScannedResume(context.Background(), sampleResume)
	require.NoError(t, err)
	assert.Contains(t, record.Education, "Stanford University")
	assert.Contains(t, record.Skills, "PostgreSQL")
}

func TestParseResume_TopKeytermsOption(t *testing.T) {
	lib, err := refdata.Load(refdata.Paths{})
	require.NoError(t, err)
	p := New(nlp.NewEngine(), lib, nil, nil, WithTopKeyterms(3))

	record, err := p.ParseResume(context.Background(), sampleResume)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(record.Keyterms), 3)
}

func TestParseResume_ExpandLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a href="https://github.com/jsmith/pipeline">repo</a>
			<a href="/relative/nav">nav</a>
		</body></html>`))
	}))
	defer srv.Close()

	lib, err := refdata.Load(refdata.Paths{})
	require.NoError(t, err)
	p := New(nlp.NewEngine(), lib, nil, nil, WithLinkExpansion())

	raw := "John Smith\njohn@example.com\nPortfolio: " + srv.URL + "/page\n"
	record, err := p.ParseResume(context.Background(), raw)
	require.NoError(t, err)

	assert.Contains(t, record.Links, srv.URL+"/page")
	assert.Contains(t, record.Links, "https://github.com/jsmith/pipeline")
	assert.NotContains(t, record.Links, "/relative/nav")
}

func TestParseResumeWithSections_PrefersProvidedSections(t *testing.T) {
	p := newParser(t)
	sections := ocr.Sections{
		refdata.SectionEducation: "MIT",
		refdata.SectionSkills:    "Rust, Erlang",
	}

	record, err := p.ParseResumeWithSections(context.Background(), sampleResume, sections)
	require.NoError(t, err)
	assert.Equal(t, "MIT", record.Education)
	assert.Contains(t, record.Skills, "Rust")
	assert.Contains(t, record.Skills, "Erlang")
}

func TestParseScannedResume_SegmentationFailure(t *testing.T) {
	p := newParser(t)

	_, err := p.ParseScannedResume(context.Background(), "no recognizable structure here")
	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, types.DocumentResume, docErr.DocType)
	assert.Equal(t, "segmentation", docErr.Stage)
}

func TestParseResume_EmptyInput(t *testing.T) {
	p := newParser(t)

	first, err := p.ParseResume(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, first.UniqueID)
	assert.Equal(t, "", first.CleanText)
	assert.Empty(t, first.Skills)

	second, err := p.ParseResume(context.Background(), "")
	require.NoError(t, err)
	assert.NotEqual(t, first.UniqueID, second.UniqueID)
}
