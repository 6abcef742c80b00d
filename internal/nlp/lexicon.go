package nlp

// Closed-class words carry their tag regardless of casing. The tagger
// only needs enough coverage to separate function words and common
// verbs from the noun/adjective/cardinal tokens the normalizer keeps.
var closedClass = map[string]string{
	// Determiners and pronouns.
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "no": "DT", "each": "DT", "every": "DT",
	"all": "PDT", "both": "PDT", "some": "DT", "any": "DT",
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "her": "PRP$",
	"us": "PRP", "them": "PRP", "my": "PRP$", "your": "PRP$", "our": "PRP$",
	"their": "PRP$", "its": "PRP$",

	// Prepositions and subordinators.
	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "to": "TO", "of": "IN", "about": "IN",
	"as": "IN", "into": "IN", "over": "IN", "under": "IN", "between": "IN",
	"through": "IN", "during": "IN", "after": "IN", "before": "IN",
	"against": "IN", "without": "IN", "within": "IN", "per": "IN",
	"while": "IN", "if": "IN", "because": "IN", "than": "IN",

	// Conjunctions.
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "so": "CC", "yet": "CC",

	// Modals and auxiliaries.
	"will": "MD", "would": "MD", "can": "MD", "could": "MD", "may": "MD",
	"might": "MD", "shall": "MD", "should": "MD", "must": "MD",
	"is": "VBZ", "am": "VBP", "are": "VBP", "was": "VBD", "were": "VBD",
	"be": "VB", "been": "VBN", "being": "VBG",
	"have": "VBP", "has": "VBZ", "had": "VBD",
	"do": "VBP", "does": "VBZ", "did": "VBD",

	// Common verbs that would otherwise default to nouns.
	"work": "VB", "use": "VB", "used": "VBD", "using": "VBG",
	"include": "VB", "includes": "VBZ", "including": "VBG",
	"require": "VB", "requires": "VBZ", "required": "VBN", "requiring": "VBG",
	"seek": "VB", "seeking": "VBG", "looking": "VBG", "join": "VB",
	"apply": "VB", "offer": "VB", "offers": "VBZ",
	"built": "VBD", "led": "VBD", "wrote": "VBD", "held": "VBD",
	"grew": "VBD", "ran": "VBD", "took": "VBD", "gave": "VBD",
	"made": "VBD", "went": "VBD", "got": "VBD", "kept": "VBD",
	"sent": "VBD",

	// Adverbs and misc.
	"not": "RB", "very": "RB", "also": "RB", "here": "RB", "there": "EX",
	"then": "RB", "too": "RB", "now": "RB", "well": "RB",
	"when": "WRB", "where": "WRB", "how": "WRB", "why": "WRB",
	"who": "WP", "whom": "WP", "what": "WP", "which": "WDT",
	"more": "JJR", "most": "JJS", "less": "JJR", "least": "JJS",
}

// Open-class adjectives common in resumes and job postings. Suffix
// rules catch the rest.
var adjectives = map[string]bool{
	"good": true, "new": true, "strong": true, "senior": true,
	"junior": true, "excellent": true, "great": true, "high": true,
	"low": true, "large": true, "small": true, "big": true,
	"relevant": true, "technical": true, "agile": true,
	"fluent": true, "proficient": true, "familiar": true,
	"experienced": true, "skilled": true, "advanced": true,
	"effective": true, "efficient": true, "key": true, "early": true,
	"able": true, "available": true, "full": true, "remote": true,
	"distributed": true, "scalable": true, "native": true,
}

var comparatives = map[string]bool{
	"better": true, "greater": true, "higher": true, "larger": true,
	"stronger": true, "faster": true,
}

var superlatives = map[string]bool{
	"best": true, "greatest": true, "highest": true, "largest": true,
	"strongest": true, "fastest": true,
}

// Organization keywords mark a capitalized run as an ORG entity.
var orgKeywords = map[string]bool{
	"university": true, "college": true, "institute": true,
	"school": true, "academy": true,
	"inc": true, "llc": true, "ltd": true, "corp": true,
	"corporation": true, "company": true, "group": true,
	"technologies": true, "technology": true, "systems": true,
	"labs": true, "laboratories": true, "solutions": true,
	"software": true, "bank": true, "consulting": true,
}

// Minimal geopolitical gazetteer for GPE recognition.
var gpeGazetteer = map[string]bool{
	"united states": true, "usa": true, "america": true,
	"canada": true, "mexico": true, "brazil": true, "argentina": true,
	"india": true, "china": true, "japan": true, "germany": true,
	"france": true, "spain": true, "italy": true, "netherlands": true,
	"uk": true, "england": true, "ireland": true, "australia": true,
	"london": true, "paris": true, "berlin": true, "madrid": true,
	"tokyo": true, "sydney": true, "toronto": true, "vancouver": true,
	"boston": true, "seattle": true, "chicago": true, "austin": true,
	"denver": true, "atlanta": true, "dallas": true, "miami": true,
	"california": true, "texas": true, "washington": true,
	"new york": true, "san francisco": true, "los angeles": true,
	"buenos aires": true, "mountain view": true,
}
