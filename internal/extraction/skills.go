package extraction

import (
	"context"
	"strings"

	"github.com/jonathan/resume-matcher/internal/refdata"
)

// Skills unions three strategies: a case-insensitive dictionary match
// over the combined raw and cleaned text, the keyword model's
// keyphrases intersected with the dictionary, and the pre-segmented
// OCR skills string split on ", ". A failing keyword model degrades to
// an empty contribution; the error is returned alongside the partial
// result so the orchestrator can log it.
func (e *Extractor) Skills(ctx context.Context, in Input) ([]string, error) {
	haystack := strings.ToLower(in.RawText + " " + in.CleanText)

	var skills []string
	for _, skill := range e.lib.Skills {
		if containsTerm(haystack, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}

	var modelErr error
	if e.keywords != nil && in.CleanText != "" {
		phrases, err := e.keywords.Keywords(ctx, in.CleanText)
		if err != nil {
			modelErr = &StrategyError{Field: "skills", Cause: err}
		} else {
			skills = append(skills, phrases...)
		}
	}

	if in.Sections != nil {
		if raw, ok := in.Sections.Lookup(refdata.SectionSkills); ok {
			for _, s := range strings.Split(raw, ", ") {
				if s = strings.TrimSpace(s); s != "" {
					skills = append(skills, s)
				}
			}
		}
	}

	return dedupe(skills), modelErr
}

// containsTerm reports whether term occurs in haystack on word
// boundaries. A plain substring check would claim "Java" for every
// "JavaScript" resume.
func containsTerm(haystack, term string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || isBoundary(haystack[idx-1])
		afterOK := end == len(haystack) || isBoundary(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isBoundary(b byte) bool {
	isAlnum := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
	return !isAlnum
}
