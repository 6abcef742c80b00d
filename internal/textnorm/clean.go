// Package textnorm derives cleaned text from raw documents: lower-cased,
// stripped of special characters and stop words, restricted to noun,
// adjective and cardinal tokens, and lemmatized.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// specialChars strips everything that is not alphanumeric or
// whitespace, with one domain exception: the literal ".js" survives so
// technology names like "node.js" are not destroyed.
var specialChars = regexp.MustCompile(`\.js|\W+`)

// allowedTags are the grammatical categories cleaned text keeps.
var allowedTags = map[string]bool{
	nlp.TagNoun:             true,
	nlp.TagNounPlural:       true,
	nlp.TagProperNoun:       true,
	nlp.TagProperNounPlural: true,
	nlp.TagAdjective:        true,
	nlp.TagAdjComparative:   true,
	nlp.TagAdjSuperlative:   true,
	nlp.TagCardinal:         true,
}

// Cleaner turns raw text into cleaned text. It holds only a provider
// handle and the immutable stop-word set, so one Cleaner serves
// concurrent callers.
type Cleaner struct {
	provider nlp.Provider
}

// NewCleaner returns a Cleaner backed by the given capability provider.
func NewCleaner(provider nlp.Provider) *Cleaner {
	return &Cleaner{provider: provider}
}

// Clean runs the full normalization pipeline. It never fails: empty or
// garbage input yields an empty string. Clean is idempotent once its
// output is treated as input text again.
func (c *Cleaner) Clean(text string) string {
	// 1. Lower-case.
	lowered := strings.ToLower(text)

	// 2. Replace special-character runs with a space, keeping ".js".
	stripped := specialChars.ReplaceAllStringFunc(lowered, func(m string) string {
		if m == ".js" {
			return m
		}
		return " "
	})

	// 3. Collapse repeated whitespace.
	collapsed := strings.Join(strings.Fields(stripped), " ")
	if collapsed == "" {
		return ""
	}

	// 4-5. Tokenize, tag, and keep nouns, adjectives and cardinals.
	tagged := c.provider.TagTokens(c.provider.Tokenize(collapsed))
	lemmas := make([]string, 0, len(tagged))
	for _, tok := range tagged {
		if !allowedTags[tok.Tag] {
			continue
		}
		// 6. Drop stop words and stray punctuation.
		if stopwords[tok.Text] {
			continue
		}
		// 7. Lemmatize by part-of-speech category.
		lemmas = append(lemmas, Lemmatize(tok.Text, tok.Tag))
	}

	// 8. Join lemmas with single spaces.
	return strings.Join(lemmas, " ")
}

var bareNumbers = regexp.MustCompile(`\b\d+\b`)

// StripNumbers removes standalone numbers from text. Used when
// preparing text for embedding, where cardinal tokens add noise.
func StripNumbers(text string) string {
	return strings.Join(strings.Fields(bareNumbers.ReplaceAllString(text, "")), " ")
}
