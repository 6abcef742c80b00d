package nlp

import (
	"hash/fnv"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// EmbeddingDim is the fixed length of vectors produced by Engine.Embed.
const EmbeddingDim = 256

// tokenPattern keeps emails, URLs and ".js"-suffixed technology names
// intact as single tokens; everything else splits into words, numbers
// and individual punctuation marks.
var tokenPattern = regexp.MustCompile(
	`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}` +
		`|(?:https?://|www\.)\S+` +
		`|[A-Za-z]+(?:\.js)?` +
		`|\d+(?:[.,]\d+)*` +
		`|[^\sA-Za-z0-9]`)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Engine is the in-process Provider implementation: a regex tokenizer,
// a lexicon-and-suffix part-of-speech tagger, a capitalization-window
// entity recognizer, a token-sequence phrase matcher and a
// feature-hashed bag-of-words embedder. All state is immutable after
// construction, so one Engine serves any number of goroutines.
type Engine struct{}

// NewEngine returns the default in-process capability provider.
func NewEngine() *Engine {
	return &Engine{}
}

// LooksLikeEmail reports whether an entire token is an email address.
func LooksLikeEmail(token string) bool {
	return emailPattern.MatchString(token)
}

// Tokenize implements Provider.
func (e *Engine) Tokenize(text string) []Token {
	matches := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{Text: text[m[0]:m[1]], Start: m[0], End: m[1]})
	}
	return tokens
}

// TagTokens implements Provider.
func (e *Engine) TagTokens(tokens []Token) []TaggedToken {
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, TaggedToken{Token: tok, Tag: tagWord(tok.Text)})
	}
	return tagged
}

func tagWord(word string) string {
	if word == "" {
		return TagNoun
	}
	if isNumeric(word) {
		return TagCardinal
	}
	first := []rune(word)[0]
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return "SYM"
	}

	lower := strings.ToLower(word)
	if tag, ok := closedClass[lower]; ok {
		return tag
	}
	if adjectives[lower] {
		return TagAdjective
	}
	if comparatives[lower] {
		return TagAdjComparative
	}
	if superlatives[lower] {
		return TagAdjSuperlative
	}

	// Capitalized or all-caps words outside the lexicons are treated
	// as proper nouns (resumes are full of product names and acronyms).
	if unicode.IsUpper(first) {
		if pluralSuffix(lower) {
			return TagProperNounPlural
		}
		return TagProperNoun
	}

	// Gerunds are deliberately not mapped to VBG: in resumes and job
	// postings -ing words are overwhelmingly content nouns
	// ("engineering", "consulting", "testing").
	switch {
	case strings.HasSuffix(lower, "ly") && len(lower) > 4:
		return "RB"
	case strings.HasSuffix(lower, "ed") && len(lower) > 4:
		return "VBD"
	case hasAdjectiveSuffix(lower):
		return TagAdjective
	case pluralSuffix(lower):
		return TagNounPlural
	default:
		return TagNoun
	}
}

func isNumeric(word string) bool {
	digits := 0
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}

func pluralSuffix(lower string) bool {
	if len(lower) <= 3 {
		return false
	}
	if !strings.HasSuffix(lower, "s") {
		return false
	}
	for _, keep := range []string{"ss", "us", "is", "os"} {
		if strings.HasSuffix(lower, keep) {
			return false
		}
	}
	return true
}

var adjectiveSuffixes = []string{"ful", "ous", "ive", "ible", "able", "ical", "ish", "less", "ary"}

func hasAdjectiveSuffix(lower string) bool {
	if len(lower) < 5 {
		return false
	}
	for _, suf := range adjectiveSuffixes {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}

// NamedEntities implements Provider. Recognition is heuristic: maximal
// runs of capitalized tokens (connectors like "of" are allowed inside a
// run) are labeled ORG when they contain an organization keyword, GPE
// when the gazetteer knows them, and PERSON when they look like a two
// or three word title-cased name.
func (e *Engine) NamedEntities(text string) []Entity {
	tokens := e.Tokenize(text)
	var entities []Entity

	i := 0
	for i < len(tokens) {
		if !isCapitalizedWord(tokens[i].Text) {
			i++
			continue
		}
		j := i + 1
		for j < len(tokens) {
			if isCapitalizedWord(tokens[j].Text) {
				j++
				continue
			}
			// Allow a single lower-case connector between capitalized
			// tokens ("University of California").
			if isConnector(tokens[j].Text) && j+1 < len(tokens) && isCapitalizedWord(tokens[j+1].Text) {
				j += 2
				continue
			}
			break
		}

		run := tokens[i:j]
		if ent, ok := classifyRun(text, run); ok {
			entities = append(entities, ent)
		}
		i = j
	}
	return entities
}

func classifyRun(text string, run []Token) (Entity, bool) {
	spanText := text[run[0].Start : run[len(run)-1].End]
	lower := strings.ToLower(spanText)
	ent := Entity{Text: spanText, Start: run[0].Start, End: run[len(run)-1].End}

	for _, word := range strings.Fields(lower) {
		if orgKeywords[word] {
			ent.Label = "ORG"
			return ent, true
		}
	}
	if gpeGazetteer[lower] {
		ent.Label = "GPE"
		return ent, true
	}
	if len(run) >= 2 && len(run) <= 3 && allTitleCaseAlpha(run) {
		ent.Label = "PERSON"
		return ent, true
	}
	return Entity{}, false
}

func isCapitalizedWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isConnector(word string) bool {
	switch strings.ToLower(word) {
	case "of", "and", "for", "&":
		return true
	}
	return false
}

func allTitleCaseAlpha(run []Token) bool {
	for _, tok := range run {
		runes := []rune(tok.Text)
		if len(runes) < 2 {
			return false
		}
		// All-caps tokens are acronyms, not name parts.
		if strings.ToUpper(tok.Text) == tok.Text {
			return false
		}
	}
	return true
}

// MatchPhrases implements Provider.
func (e *Engine) MatchPhrases(patterns []string, text string) []Span {
	tokens := e.Tokenize(text)
	lowered := make([]string, len(tokens))
	for i, tok := range tokens {
		lowered[i] = strings.ToLower(tok.Text)
	}

	var spans []Span
	for _, pattern := range patterns {
		want := strings.Fields(strings.ToLower(pattern))
		if len(want) == 0 {
			continue
		}
		for i := 0; i+len(want) <= len(lowered); i++ {
			if !sliceEqual(lowered[i:i+len(want)], want) {
				continue
			}
			start := tokens[i].Start
			end := tokens[i+len(want)-1].End
			spans = append(spans, Span{Text: text[start:end], Pattern: pattern, Start: start, End: end})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

func sliceEqual(a, b []string) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Embed implements Provider: a feature-hashed bag-of-words vector of
// EmbeddingDim counts. Deterministic and offline; two texts sharing
// vocabulary produce vectors with high cosine similarity.
func (e *Engine) Embed(text string) []float64 {
	vec := make([]float64, EmbeddingDim)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		vec[h.Sum32()%EmbeddingDim]++
	}
	return vec
}
