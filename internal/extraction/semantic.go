package extraction

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// maxTitleTokens filters overly long designation entries out of the
// phrase matcher. Anything that long is a sentence, not a title.
const maxTitleTokens = 10

// JobTitles matches the designation vocabulary against cleaned text
// and returns the hits, longest phrase first so the most specific
// title leads.
func (e *Extractor) JobTitles(clean string) []string {
	patterns := make([]string, 0, len(e.lib.Titles))
	for _, title := range e.lib.Titles {
		if len(strings.Fields(title)) < maxTitleTokens {
			patterns = append(patterns, title)
		}
	}

	var titles []string
	for _, span := range e.provider.MatchPhrases(patterns, clean) {
		titles = append(titles, strings.ToLower(span.Text))
	}
	titles = dedupe(titles)

	// Stable insertion sort by descending word count keeps document
	// order among equally specific titles.
	for i := 1; i < len(titles); i++ {
		for j := i; j > 0 && len(strings.Fields(titles[j])) > len(strings.Fields(titles[j-1])); j-- {
			titles[j], titles[j-1] = titles[j-1], titles[j]
		}
	}
	return titles
}

// Entities returns geopolitical and organization entities found in the
// raw text, lower-cased and deduplicated.
func (e *Extractor) Entities(raw string) []string {
	var entities []string
	for _, ent := range e.provider.NamedEntities(raw) {
		if ent.Label == nlp.EntityGPE || ent.Label == nlp.EntityOrg {
			entities = append(entities, strings.ToLower(ent.Text))
		}
	}
	return dedupe(entities)
}

// Nouns returns every token tagged as a common or proper noun, in
// document order with duplicates removed. Job description parsing
// stores these as extracted_keywords.
func (e *Extractor) Nouns(text string) []string {
	var nouns []string
	for _, tok := range e.provider.TagTokens(e.provider.Tokenize(text)) {
		if nlp.IsNounTag(tok.Tag) {
			nouns = append(nouns, tok.Text)
		}
	}
	return dedupe(nouns)
}
