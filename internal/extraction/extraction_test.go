package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/ocr"
	"github.com/jonathan/resume-matcher/internal/refdata"
)

type stubKeywordModel struct {
	phrases []string
	err     error
}

func (s *stubKeywordModel) Keywords(_ context.Context, _ string) ([]string, error) {
	return s.phrases, s.err
}

func newExtractor(t *testing.T, keywords KeywordModel) *Extractor {
	t.Helper()
	lib, err := refdata.Load(refdata.Paths{})
	require.NoError(t, err)
	return New(nlp.NewEngine(), lib, keywords)
}

func TestEmails_UnionOfScansWithDedupe(t *testing.T) {
	e := newExtractor(t, nil)

	raw := "Contact: jane.doe@example.com or Jane.Doe@work.io (jane.doe@example.com)"
	emails := e.Emails(raw)
	assert.Equal(t, []string{"jane.doe@example.com", "Jane.Doe@work.io"}, emails)
}

func TestEmails_None(t *testing.T) {
	assert.Empty(t, newExtractor(t, nil).Emails("no contact details here"))
}

func TestPhone_GeneralPatternWins(t *testing.T) {
	e := newExtractor(t, nil)

	// Both forms are present; the general pattern sits earlier in the
	// chain so its match is returned.
	raw := "Cell 123-456-7890 or office (999) 888-7777"
	assert.Equal(t, "123-456-7890", e.Phone(raw))
}

func TestPhone_ParenthesizedAreaCode(t *testing.T) {
	e := newExtractor(t, nil)
	assert.Equal(t, "(555) 123-4567", e.Phone("Reach me at (555) 123-4567"))
}

func TestPhone_InternationalForm(t *testing.T) {
	e := newExtractor(t, nil)
	assert.Equal(t, "+1 415 555 2671", e.Phone("Phone: +1 415 555 2671"))
}

func TestPhone_Absent(t *testing.T) {
	assert.Equal(t, "", newExtractor(t, nil).Phone("no digits to speak of"))
}

func TestNames_FoundInPrefixOnly(t *testing.T) {
	e := newExtractor(t, nil)

	raw := "John Smith\nSenior Software Engineer\n\nWorked with Alice Johnson on several projects."
	names := e.Names(raw)
	assert.Contains(t, names, "John Smith")
	// Alice Johnson appears past the prefix cut and must not leak in.
	assert.NotContains(t, names, "Alice Johnson")
}

func TestNames_EmptyInput(t *testing.T) {
	assert.Empty(t, newExtractor(t, nil).Names(""))
}

func TestLinks_TrimsTrailingPunctuation(t *testing.T) {
	e := newExtractor(t, nil)

	raw := "See https://github.com/janedoe and www.linkedin.com/in/janedoe."
	links := e.Links(raw)
	assert.Equal(t, []string{"https://github.com/janedoe", "www.linkedin.com/in/janedoe"}, links)
}

func TestHrefLinks_AllowListFilters(t *testing.T) {
	html := `<html><body>
		<a href="https://github.com/janedoe">code</a>
		<a href="/relative/path">nav</a>
		<a href="mailto:jane@example.com">mail</a>
		<a href="javascript:void(0)">noise</a>
	</body></html>`

	links, err := HrefLinks(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://github.com/janedoe", "mailto:jane@example.com"}, links)
}

func TestSkills_DictionaryMatchesOnWordBoundaries(t *testing.T) {
	e := newExtractor(t, nil)

	skills, err := e.Skills(context.Background(), Input{
		RawText:   "Built services in Python and JavaScript on Kubernetes.",
		CleanText: "service python javascript kubernetes",
	})
	require.NoError(t, err)
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "Kubernetes")
	// "JavaScript" must not also claim the "Java" dictionary entry.
	assert.NotContains(t, skills, "Java")
}

func TestSkills_UnionsKeywordModelAndSections(t *testing.T) {
	e := newExtractor(t, &stubKeywordModel{phrases: []string{"Terraform", "python"}})

	skills, err := e.Skills(context.Background(), Input{
		RawText:   "Python everywhere",
		CleanText: "python",
		Sections:  ocr.Sections{refdata.SectionSkills: "Go, SQL, Leadership"},
	})
	require.NoError(t, err)
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Terraform")
	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "Leadership")
	// The model's lower-cased "python" duplicate collapses into the
	// dictionary's canonical form.
	assert.NotContains(t, skills, "python")
}

func TestSkills_ModelFailureDegrades(t *testing.T) {
	e := newExtractor(t, &stubKeywordModel{err: errors.New("quota exceeded")})

	skills, err := e.Skills(context.Background(), Input{
		RawText:   "Python developer",
		CleanText: "python developer",
	})
	require.Error(t, err)
	var stratErr *StrategyError
	require.ErrorAs(t, err, &stratErr)
	assert.Equal(t, "skills", stratErr.Field)
	// The dictionary contribution survives the model failure.
	assert.Contains(t, skills, "Python")
}

func TestEducation_SectionScanner(t *testing.T) {
	e := newExtractor(t, nil)

	raw := "EDUCATION B.S. Computer Science Stanford University SKILLS Python SQL"
	got := e.Education(Input{RawText: raw})
	assert.Equal(t, "B.S. Computer Science Stanford University", got)
}

func TestEducation_PrefersOCRSection(t *testing.T) {
	e := newExtractor(t, nil)

	got := e.Education(Input{
		RawText:  "EDUCATION scanner text",
		Sections: ocr.Sections{refdata.SectionEducation: "MIT 2019"},
	})
	assert.Equal(t, "MIT 2019", got)
}

func TestExperience_SectionScanner(t *testing.T) {
	e := newExtractor(t, nil)

	raw := "SUMMARY Engineer EXPERIENCE Acme Corp backend services EDUCATION MIT"
	got := e.Experience(Input{RawText: raw})
	assert.Equal(t, "Acme Corp backend services", got)
}

func TestDegreeTitles_AbbreviationsAndSpelledOut(t *testing.T) {
	e := newExtractor(t, nil)

	titles := e.DegreeTitles("Earned a B.S. in 2015.\nMaster of Science in Computer Engineering, 2018.")
	assert.Contains(t, titles, "B.S")
	assert.Contains(t, titles, "Master of Science in Computer Engineering")
}

func TestDegreeTitles_NoDegreeMentions(t *testing.T) {
	assert.Empty(t, newExtractor(t, nil).DegreeTitles("Ten years of backend work."))
}

func TestUniversities_EntityAndReferenceTableUnion(t *testing.T) {
	e := newExtractor(t, nil)

	universities := e.Universities(Input{
		RawText:   "Studied at Stanford University before joining Acme.",
		CleanText: "stanford university computer science",
	})
	assert.Equal(t, []string{"stanford university"}, universities)
}

func TestJobTitles_MostSpecificFirst(t *testing.T) {
	e := newExtractor(t, nil)

	titles := e.JobTitles("seeking senior data engineer position")
	require.NotEmpty(t, titles)
	assert.Equal(t, "senior data engineer", titles[0])
	assert.Contains(t, titles, "data engineer")
}

func TestEntities_GPEAndOrgOnly(t *testing.T) {
	e := newExtractor(t, nil)

	entities := e.Entities("Jane Doe worked at Stanford University in San Francisco.")
	assert.Contains(t, entities, "stanford university")
	assert.Contains(t, entities, "san francisco")
	assert.NotContains(t, entities, "jane doe")
}

func TestNouns_FiltersToNounTags(t *testing.T) {
	e := newExtractor(t, nil)

	nouns := e.Nouns("scalable data pipeline")
	assert.Contains(t, nouns, "data")
	assert.Contains(t, nouns, "pipeline")
	assert.NotContains(t, nouns, "scalable")
}
