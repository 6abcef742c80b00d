package textnorm

import "sort"

// TopWordCount is the default number of entries in a word frequency
// summary.
const TopWordCount = 10

// CountTopWords counts word occurrences in text (already cleaned,
// whitespace-separated) and returns the k most frequent words. Ties
// break alphabetically so the result is deterministic.
func CountTopWords(text string, k int) map[string]int {
	if k <= 0 {
		k = TopWordCount
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	start := -1
	for i := 0; i <= len(text); i++ {
		atEnd := i == len(text)
		if !atEnd && text[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			word := text[start:i]
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
			start = -1
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	if len(order) > k {
		order = order[:k]
	}
	top := make(map[string]int, len(order))
	for _, word := range order {
		top[word] = counts[word]
	}
	return top
}
