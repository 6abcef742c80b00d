package textnorm

import "strings"

// stopwordList is the standard English stop-word set; punctuation
// symbols are appended below so stray marks never survive cleaning.
var stopwordList = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same",
	"so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "should", "now",
}

const punctuationSymbols = `!"#$%&'()*+,-./:;<=>?@[\]^_` + "`" + `{|}~`

var stopwords = buildStopwords()

func buildStopwords() map[string]bool {
	set := make(map[string]bool, len(stopwordList)+len(punctuationSymbols))
	for _, w := range stopwordList {
		set[w] = true
	}
	for _, r := range punctuationSymbols {
		set[string(r)] = true
	}
	return set
}

// IsStopword reports whether the lower-cased word is in the stop set.
func IsStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}
