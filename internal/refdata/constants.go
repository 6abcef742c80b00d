package refdata

import "regexp"

// Canonical resume section labels. OCR segmentation and the section
// scanner both normalize header spellings to these.
const (
	SectionObjective  = "objective"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionCerts      = "certifications"
	SectionAwards     = "awards"
	SectionInterests  = "interests"
	SectionReferences = "references"
)

// SectionHeaders maps the header spellings seen in resumes to their
// canonical section label. Lookup keys are lower-cased with
// punctuation stripped.
var SectionHeaders = map[string]string{
	"objective":       SectionObjective,
	"summary":         SectionSummary,
	"about":           SectionSummary,
	"profile":         SectionSummary,
	"experience":      SectionExperience,
	"employment":      SectionExperience,
	"work":            SectionExperience,
	"history":         SectionExperience,
	"internships":     SectionExperience,
	"education":       SectionEducation,
	"academics":       SectionEducation,
	"qualifications":  SectionEducation,
	"skills":          SectionSkills,
	"technologies":    SectionSkills,
	"competencies":    SectionSkills,
	"expertise":       SectionSkills,
	"projects":        SectionProjects,
	"certifications":  SectionCerts,
	"certificates":    SectionCerts,
	"licenses":        SectionCerts,
	"awards":          SectionAwards,
	"honors":          SectionAwards,
	"achievements":    SectionAwards,
	"interests":       SectionInterests,
	"hobbies":         SectionInterests,
	"activities":      SectionInterests,
	"references":      SectionReferences,
	"accomplishments": SectionAwards,
}

// DegreeKeywords are the upper-cased degree abbreviations that make a
// sentence a candidate for education title extraction.
var DegreeKeywords = []string{
	"BE", "B.E.", "B.E", "BS", "B.S", "B.S.", "BA", "B.A", "B.A.",
	"BTECH", "B.TECH", "BSC", "B.SC", "BCA",
	"ME", "M.E", "M.E.", "MS", "M.S", "M.S.", "MA", "M.A", "M.A.",
	"MTECH", "M.TECH", "MSC", "M.SC", "MCA", "MBA",
	"PHD", "PH.D", "PH.D.",
	"SSC", "HSC", "CBSE", "ICSE", "X", "XII",
}

// DegreePatterns reduces candidate sentences to the qualifying phrase,
// one pattern set per degree level. Keys also act as candidate
// keywords during the sentence scan.
var DegreePatterns = map[string]*regexp.Regexp{
	"BACHELOR": regexp.MustCompile(`(?i)\b(?:bachelor(?:'?s)?(?:\s+(?:of|in)\s+[a-z]+(?:\s+[a-z]+){0,3})?|b\.?\s?(?:a|s|e|sc|ca|tech)\b\.?)`),
	"MASTER":   regexp.MustCompile(`(?i)\b(?:master(?:'?s)?(?:\s+(?:of|in)\s+[a-z]+(?:\s+[a-z]+){0,3})?|m\.?\s?(?:a|s|e|sc|ca|tech|ba)\b\.?)`),
	"DOCTOR":   regexp.MustCompile(`(?i)\b(?:ph\.?\s?d\.?|doctor(?:ate)?(?:\s+(?:of|in)\s+[a-z]+(?:\s+[a-z]+){0,3})?)`),
}
