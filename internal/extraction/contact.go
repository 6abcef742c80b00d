package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// phonePatterns is a priority chain, not a union: the first pattern
// with a hit decides the result. The general international form goes
// first, the parenthesized area code form second, and a loose digit
// run catches whatever formatting the first two miss.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\+?\d[\d\-\s().]{7,}\d`),
}

// namePrefixLen bounds how far into the document name extraction
// looks. Names sit at the top of resumes; scanning further mostly
// picks up company and product names. The cut is rounded up to the
// next token boundary so a name straddling the limit survives.
const namePrefixLen = 30

// Emails returns every email-shaped string in the raw text: the union
// of token-level matches from the linguistic provider and a direct
// regular expression scan. Results keep their original casing.
func (e *Extractor) Emails(raw string) []string {
	var emails []string
	for _, tok := range e.provider.Tokenize(raw) {
		if nlp.LooksLikeEmail(tok.Text) {
			emails = append(emails, tok.Text)
		}
	}
	emails = append(emails, emailPattern.FindAllString(raw, -1)...)
	return dedupe(emails)
}

// Phone returns the first phone number matched by the pattern chain,
// or "" when no pattern hits.
func (e *Extractor) Phone(raw string) string {
	for _, p := range phonePatterns {
		if m := p.FindString(raw); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// Names extracts candidate person names from the document prefix: the
// union of consecutive proper-noun bigrams and PERSON entities.
func (e *Extractor) Names(raw string) []string {
	prefix := tokenBoundaryPrefix(e.provider, raw, namePrefixLen)
	if prefix == "" {
		return nil
	}

	var names []string
	tagged := e.provider.TagTokens(e.provider.Tokenize(prefix))
	for i := 1; i < len(tagged); i++ {
		if isProperNoun(tagged[i-1].Tag) && isProperNoun(tagged[i].Tag) {
			names = append(names, tagged[i-1].Text+" "+tagged[i].Text)
		}
	}
	for _, ent := range e.provider.NamedEntities(prefix) {
		if ent.Label == nlp.EntityPerson {
			names = append(names, ent.Text)
		}
	}
	return dedupe(names)
}

func isProperNoun(tag string) bool {
	return tag == nlp.TagProperNoun || tag == nlp.TagProperNounPlural
}

// tokenBoundaryPrefix cuts text after the last token that starts
// before limit, so the cut never lands mid-word.
func tokenBoundaryPrefix(provider nlp.Provider, text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	end := 0
	for _, tok := range provider.Tokenize(text) {
		if tok.Start >= limit {
			break
		}
		end = tok.End
	}
	if end == 0 {
		return ""
	}
	return text[:end]
}

// dedupe drops case-insensitive duplicates, keeping first-seen order
// and casing.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
