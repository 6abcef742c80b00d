package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/refdata"
)

// Education returns the education section text: the OCR section when
// available, otherwise the output of the section boundary scanner.
func (e *Extractor) Education(in Input) string {
	if in.Sections != nil {
		if content, ok := in.Sections.Lookup(refdata.SectionEducation); ok {
			return content
		}
	}
	return scanSection(in.RawText, refdata.SectionEducation)
}

// Experience returns the work experience section text using the same
// two strategies as Education.
func (e *Extractor) Experience(in Input) string {
	if in.Sections != nil {
		if content, ok := in.Sections.Lookup(refdata.SectionExperience); ok {
			return content
		}
	}
	return scanSection(in.RawText, refdata.SectionExperience)
}

// scanSection walks tokens and flips an inside flag when it meets a
// header word for the wanted section, collecting words until a header
// for any other section shows up.
func scanSection(raw, wanted string) string {
	var collected []string
	inside := false
	for _, word := range strings.Fields(raw) {
		key := stripSymbols(strings.ToLower(word))
		if label, ok := refdata.SectionHeaders[key]; ok {
			inside = label == wanted
			continue
		}
		if inside {
			collected = append(collected, word)
		}
	}
	return strings.Join(collected, " ")
}

// DegreeTitles scans sentences for degree evidence and reduces the
// hits to the qualifying phrase. Resumes store the result as
// education_title, job descriptions as qualifications; the strategy is
// identical.
func (e *Extractor) DegreeTitles(raw string) []string {
	var titles []string
	for _, sentence := range splitSentences(raw) {
		if !mentionsDegree(sentence) {
			continue
		}
		for _, level := range degreeLevels() {
			for _, m := range refdata.DegreePatterns[level].FindAllString(sentence, -1) {
				m = strings.TrimSpace(m)
				if m != "" {
					titles = append(titles, m)
				}
			}
		}
	}
	return dedupe(titles)
}

// mentionsDegree checks whether any symbol-stripped upper-cased word
// of the sentence is a degree keyword or a degree pattern key.
func mentionsDegree(sentence string) bool {
	for _, word := range strings.Fields(sentence) {
		w := strings.ToUpper(strings.Trim(word, ",;:()"))
		for _, kw := range refdata.DegreeKeywords {
			if w == kw {
				return true
			}
		}
		stripped := stripSymbols(w)
		for level := range refdata.DegreePatterns {
			if stripped == level || strings.HasPrefix(stripped, level) {
				return true
			}
		}
	}
	return false
}

// degreeLevels returns the pattern keys in a fixed order so output is
// stable across runs.
func degreeLevels() []string {
	levels := make([]string, 0, len(refdata.DegreePatterns))
	for level := range refdata.DegreePatterns {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}

// Universities unions ORG entities that look like institutions with
// exact phrase matches of the university reference table against the
// cleaned text. Results are lower-cased.
func (e *Extractor) Universities(in Input) []string {
	var universities []string
	for _, ent := range e.provider.NamedEntities(in.RawText) {
		if ent.Label != nlp.EntityOrg {
			continue
		}
		lower := strings.ToLower(ent.Text)
		if strings.Contains(lower, "university") ||
			strings.Contains(lower, "college") ||
			strings.Contains(lower, "institute") {
			universities = append(universities, lower)
		}
	}
	for _, span := range e.provider.MatchPhrases(e.lib.Universities, in.CleanText) {
		universities = append(universities, strings.ToLower(span.Text))
	}
	return dedupe(universities)
}

// sentenceBoundary splits on line breaks and terminal punctuation. A
// period only ends a sentence when whitespace follows, which keeps
// degree abbreviations like "B.S." intact.
var sentenceBoundary = regexp.MustCompile(`[\n!?]+|\.\s+`)

func splitSentences(text string) []string {
	sentences := sentenceBoundary.Split(text, -1)
	out := sentences[:0]
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stripSymbols(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
