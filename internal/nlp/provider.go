// Package nlp provides the linguistic capability provider consumed by
// the extraction pipeline: tokenization, part-of-speech tagging, named
// entity recognition, phrase matching and text embedding.
//
// The pipeline only depends on the Provider interface; Engine is the
// in-process default implementation. Providers are expensive to build
// relative to a single call, so construct one per process and share it
// read-only across concurrent document pipelines.
package nlp

// Token is a single tokenizer output with byte offsets into the source
// text.
type Token struct {
	Text  string
	Start int
	End   int
}

// TaggedToken pairs a token with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Token
	Tag string
}

// Entity is a named entity span. Label is one of "PERSON", "ORG" or
// "GPE".
type Entity struct {
	Text  string
	Label string
	Start int
	End   int
}

// Span is a phrase-matcher hit: the matched text and the pattern that
// produced it.
type Span struct {
	Text    string
	Pattern string
	Start   int
	End     int
}

// Provider is the narrow linguistic interface the pipeline calls. All
// methods must be pure with respect to the provider's state and safe
// for concurrent use.
type Provider interface {
	// Tokenize splits text into ordered tokens. Email addresses and
	// URLs survive as single tokens.
	Tokenize(text string) []Token
	// TagTokens assigns a Penn Treebank tag to each token.
	TagTokens(tokens []Token) []TaggedToken
	// NamedEntities recognizes PERSON/ORG/GPE entities in text.
	NamedEntities(text string) []Entity
	// MatchPhrases finds case-insensitive occurrences of each pattern
	// phrase in text, in document order.
	MatchPhrases(patterns []string, text string) []Span
	// Embed maps text to a fixed-length numeric vector.
	Embed(text string) []float64
}

// Entity labels produced by NamedEntities.
const (
	EntityPerson = "PERSON"
	EntityOrg    = "ORG"
	EntityGPE    = "GPE"
)

// Noun part-of-speech tags, shared by the normalizer and extractors.
const (
	TagNoun             = "NN"
	TagNounPlural       = "NNS"
	TagProperNoun       = "NNP"
	TagProperNounPlural = "NNPS"
	TagAdjective        = "JJ"
	TagAdjComparative   = "JJR"
	TagAdjSuperlative   = "JJS"
	TagCardinal         = "CD"
)

// IsNounTag reports whether tag is a common or proper noun tag.
func IsNounTag(tag string) bool {
	switch tag {
	case TagNoun, TagNounPlural, TagProperNoun, TagProperNounPlural:
		return true
	}
	return false
}
