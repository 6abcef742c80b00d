package keyterms

import (
	"math"
	"sort"
	"strings"
)

// TermScore is a corpus-level term weight.
type TermScore struct {
	Term  string
	Score float64
}

// TFIDF weighs the terms of one document against a corpus of cleaned
// documents. docIndex selects the document to score; terms are returned
// best first with alphabetical tie-breaking. Useful for surfacing what
// distinguishes one resume from the rest of a batch.
func TFIDF(docs []string, docIndex int) []TermScore {
	if docIndex < 0 || docIndex >= len(docs) {
		return nil
	}

	docFreq := make(map[string]int)
	counts := make([]map[string]int, len(docs))
	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, w := range strings.Fields(doc) {
			counts[i][w]++
		}
		for w := range counts[i] {
			docFreq[w]++
		}
	}

	target := counts[docIndex]
	total := 0
	for _, c := range target {
		total += c
	}
	if total == 0 {
		return nil
	}

	scores := make([]TermScore, 0, len(target))
	for w, c := range target {
		tf := float64(c) / float64(total)
		// Smoothed idf keeps terms present in every document at a
		// small positive weight instead of zeroing them out.
		idf := math.Log(float64(1+len(docs))/float64(1+docFreq[w])) + 1
		scores = append(scores, TermScore{Term: w, Score: tf * idf})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Term < scores[j].Term
	})
	return scores
}
