package textnorm

import "strings"

// invariantLemmas are words the suffix rules would mangle: uncountable
// nouns and technology names whose trailing "s" or "es" is not a
// plural marker.
var invariantLemmas = map[string]bool{
	"news": true, "series": true, "species": true, "means": true,
	"mathematics": true, "physics": true, "economics": true,
	"statistics": true, "analytics": true, "robotics": true,
	"devops": true, "kubernetes": true, "jenkins": true,
	"aws": true, "css": true, "sass": true, "postgres": true,
	"redis": true, "express": true,
}

var irregularNouns = map[string]string{
	"men": "man", "women": "woman", "children": "child",
	"people": "person", "teeth": "tooth", "feet": "foot",
	"mice": "mouse", "criteria": "criterion",
}

var irregularVerbs = map[string]string{
	"was": "be", "were": "be", "been": "be", "am": "be", "is": "be", "are": "be",
	"had": "have", "has": "have", "did": "do", "does": "do", "done": "do",
	"made": "make", "went": "go", "got": "get", "ran": "run",
	"built": "build", "led": "lead", "wrote": "write", "took": "take",
	"gave": "give", "held": "hold", "grew": "grow",
}

// irregularAdjectives covers the comparative and superlative forms the
// tagger recognizes; regular adjectives pass through unchanged.
var irregularAdjectives = map[string]string{
	"better": "good", "best": "good",
	"greater": "great", "greatest": "great",
	"higher": "high", "highest": "high",
	"larger": "large", "largest": "large",
	"stronger": "strong", "strongest": "strong",
	"faster": "fast", "fastest": "fast",
	"more": "more", "most": "most", "less": "less", "least": "least",
}

// Lemmatize reduces a word to its lemma using the part-of-speech
// category of its tag: J* as adjective, V* as verb, R* as adverb,
// everything else (the default) as noun. The rules are suffix
// detachments in the WordNet morphy style; words they cannot improve
// pass through unchanged.
func Lemmatize(word, tag string) string {
	lower := strings.ToLower(word)
	if invariantLemmas[lower] || strings.Contains(lower, ".js") {
		return lower
	}

	switch {
	case strings.HasPrefix(tag, "J"):
		return adjectiveLemma(lower)
	case strings.HasPrefix(tag, "V") || tag == "MD":
		return verbLemma(lower)
	case strings.HasPrefix(tag, "R"):
		return lower // adverbs rarely inflect; identity is the safe rule
	default:
		return nounLemma(lower)
	}
}

func nounLemma(word string) string {
	if lemma, ok := irregularNouns[word]; ok {
		return lemma
	}
	n := len(word)
	switch {
	case n > 4 && strings.HasSuffix(word, "ies"):
		return word[:n-3] + "y"
	case n > 4 && hasAnySuffix(word, "sses", "ches", "shes", "xes", "zes"):
		return word[:n-2]
	case n > 3 && strings.HasSuffix(word, "s") && !hasAnySuffix(word, "ss", "us", "is", "os"):
		return word[:n-1]
	default:
		return word
	}
}

func verbLemma(word string) string {
	if lemma, ok := irregularVerbs[word]; ok {
		return lemma
	}
	n := len(word)
	switch {
	case n > 5 && strings.HasSuffix(word, "ying"):
		return word[:n-4] + "y"
	case n > 5 && strings.HasSuffix(word, "ing"):
		return undouble(word[:n-3])
	case n > 4 && strings.HasSuffix(word, "ied"):
		return word[:n-3] + "y"
	case n > 4 && strings.HasSuffix(word, "ed"):
		return undouble(word[:n-2])
	case n > 4 && strings.HasSuffix(word, "ies"):
		return word[:n-3] + "y"
	case n > 3 && strings.HasSuffix(word, "es"):
		return word[:n-2]
	case n > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:n-1]
	default:
		return word
	}
}

func adjectiveLemma(word string) string {
	if lemma, ok := irregularAdjectives[word]; ok {
		return lemma
	}
	n := len(word)
	switch {
	case n > 5 && strings.HasSuffix(word, "iest"):
		return word[:n-4] + "y"
	case n > 4 && strings.HasSuffix(word, "ier"):
		return word[:n-3] + "y"
	default:
		return word
	}
}

// eRestoreStems maps detachment leftovers to their real base form for
// verbs whose infinitive ends in a silent "e".
var eRestoreStems = map[string]string{
	"mak": "make", "tak": "take", "writ": "write", "cod": "code",
	"manag": "manage", "creat": "create", "us": "use",
	"improv": "improve", "provid": "provide", "integrat": "integrate",
	"automat": "automate", "analyz": "analyze", "describ": "describe",
}

// undouble collapses the doubled final consonant left behind by -ing
// and -ed detachment ("running" -> "runn" -> "run") and restores the
// silent "e" for known stems ("making" -> "mak" -> "make").
func undouble(stem string) string {
	if base, ok := eRestoreStems[stem]; ok {
		return base
	}
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && stem[n-1] != 's' && stem[n-1] != 'l' {
		return stem[:n-1]
	}
	return stem
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(word, suf) {
			return true
		}
	}
	return false
}
