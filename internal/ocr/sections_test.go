package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/refdata"
)

const sampleScan = `Jane Doe
jane@example.com

EXPERIENCE
Software Engineer at Acme Corp
Built data pipelines in Python

EDUCATION
Stanford University
Master of Science in Computer Science

SKILLS
Python, Go, Kubernetes
`

func TestSegment_SplitsOnHeaders(t *testing.T) {
	sections, err := Segment(sampleScan)
	require.NoError(t, err)

	exp, ok := sections.Lookup(refdata.SectionExperience)
	require.True(t, ok)
	assert.Contains(t, exp, "Acme Corp")

	edu, ok := sections.Lookup(refdata.SectionEducation)
	require.True(t, ok)
	assert.Contains(t, edu, "Stanford University")

	skills, ok := sections.Lookup(refdata.SectionSkills)
	require.True(t, ok)
	assert.Equal(t, "Python, Go, Kubernetes", skills)
}

func TestSegment_HeaderSpellingVariants(t *testing.T) {
	sections, err := Segment("Work History\nAcme Corp\n\nTechnologies\nGo, SQL\n")
	require.NoError(t, err)

	_, ok := sections.Lookup(refdata.SectionExperience)
	assert.True(t, ok)
	_, ok = sections.Lookup(refdata.SectionSkills)
	assert.True(t, ok)
}

func TestSegment_LongLinesAreNotHeaders(t *testing.T) {
	text := "SKILLS\nfive years of professional experience building education platforms with Go\n"
	sections, err := Segment(text)
	require.NoError(t, err)

	// The body line mentions "experience" and "education" but stays
	// inside the skills section.
	require.Len(t, sections, 1)
	skills, ok := sections.Lookup(refdata.SectionSkills)
	require.True(t, ok)
	assert.Contains(t, skills, "five years")
}

func TestSegment_NoHeadersFails(t *testing.T) {
	_, err := Segment("just some unstructured text with no markers")
	var segErr *SegmentationError
	require.ErrorAs(t, err, &segErr)
}

func TestSegment_EmptyInputFails(t *testing.T) {
	_, err := Segment("   \n  ")
	require.Error(t, err)
}
