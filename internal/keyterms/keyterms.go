// Package keyterms ranks salient phrases from cleaned document text and
// produces the n-gram chunks stored alongside extraction records.
package keyterms

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// DefaultTopN caps how many ranked keyterms a record carries.
	DefaultTopN = 20

	coOccurrenceWindow = 3
	dampingFactor      = 0.85
	maxIterations      = 50
	convergenceEps     = 1e-5
)

// Extractor ranks keyterms from already-cleaned text. It is stateless
// and safe for concurrent use.
type Extractor struct {
	provider nlp.Provider
}

func NewExtractor(provider nlp.Provider) *Extractor {
	return &Extractor{provider: provider}
}

// RankKeyterms scores the terms of cleaned text with a co-occurrence
// graph walk and returns the topN highest ranked, best first. Ties
// break alphabetically so results are stable across runs. The cleaned
// text is assumed lemmatized and stopword-free, so every token is a
// candidate node.
func (e *Extractor) RankKeyterms(text string, topN int) []types.Keyterm {
	if topN <= 0 {
		topN = DefaultTopN
	}
	words := tokenWords(e.provider, text)
	if len(words) == 0 {
		return nil
	}

	// 1. Index the vocabulary.
	index := make(map[string]int)
	var vocab []string
	for _, w := range words {
		if _, ok := index[w]; !ok {
			index[w] = len(vocab)
			vocab = append(vocab, w)
		}
	}

	// 2. Build the undirected co-occurrence graph over a sliding window.
	adjacency := make([]map[int]float64, len(vocab))
	for i := range adjacency {
		adjacency[i] = make(map[int]float64)
	}
	for i, w := range words {
		wi := index[w]
		for j := i + 1; j < len(words) && j <= i+coOccurrenceWindow-1; j++ {
			wj := index[words[j]]
			if wi == wj {
				continue
			}
			adjacency[wi][wj]++
			adjacency[wj][wi]++
		}
	}

	// 3. Power-iterate the centrality scores until they settle.
	ranks := make([]float64, len(vocab))
	for i := range ranks {
		ranks[i] = 1.0 / float64(len(vocab))
	}
	weightSums := make([]float64, len(vocab))
	for i, edges := range adjacency {
		for _, w := range edges {
			weightSums[i] += w
		}
	}
	next := make([]float64, len(vocab))
	for iter := 0; iter < maxIterations; iter++ {
		var delta float64
		for i := range vocab {
			sum := 0.0
			for j, w := range adjacency[i] {
				if weightSums[j] > 0 {
					sum += ranks[j] * w / weightSums[j]
				}
			}
			next[i] = (1-dampingFactor)/float64(len(vocab)) + dampingFactor*sum
			delta += math.Abs(next[i] - ranks[i])
		}
		copy(ranks, next)
		if delta < convergenceEps {
			break
		}
	}

	// 4. Sort and truncate.
	terms := make([]types.Keyterm, len(vocab))
	for i, w := range vocab {
		terms[i] = types.Keyterm{Phrase: w, Score: ranks[i]}
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Score != terms[j].Score {
			return terms[i].Score > terms[j].Score
		}
		return terms[i].Phrase < terms[j].Phrase
	})
	if len(terms) > topN {
		terms = terms[:topN]
	}
	return terms
}

// Bigrams slices the token sequence into overlapping two-word chunks.
// Order is preserved and duplicates are kept.
func (e *Extractor) Bigrams(text string) []string {
	return e.NGrams(text, 2)
}

// Trigrams slices the token sequence into overlapping three-word chunks.
func (e *Extractor) Trigrams(text string) []string {
	return e.NGrams(text, 3)
}

// NGrams returns every window of n consecutive tokens joined by single
// spaces.
func (e *Extractor) NGrams(text string, n int) []string {
	words := tokenWords(e.provider, text)
	if n <= 0 || len(words) < n {
		return nil
	}
	grams := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, strings.Join(words[i:i+n], " "))
	}
	return grams
}

func tokenWords(provider nlp.Provider, text string) []string {
	tokens := provider.Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}
	return words
}
