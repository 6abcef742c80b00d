// Package types defines the canonical data model shared across the
// extraction and matching pipeline.
package types

import "strings"

// DocumentType tags an ExtractionRecord with the kind of source document
// it was parsed from. Resumes and job descriptions share the same record
// shape but carry different extracted fields.
type DocumentType string

const (
	// DocumentResume marks a record parsed from a candidate resume.
	DocumentResume DocumentType = "resume"
	// DocumentJobDescription marks a record parsed from a job posting.
	DocumentJobDescription DocumentType = "job_description"
)

// Keyterm is one ranked phrase representing salient document content.
type Keyterm struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// ExtractionRecord is the canonical output of parsing one document.
// UniqueID and RawText are always present; every other field is
// best-effort and omitted when no extraction strategy produced evidence.
// Records are never mutated after construction; callers rebuild rather
// than patch.
type ExtractionRecord struct {
	UniqueID string       `json:"unique_id"`
	DocType  DocumentType `json:"doc_type"`
	RawText  string       `json:"raw_text"`

	CleanText         string         `json:"clean_text,omitempty"`
	Entities          []string       `json:"entities,omitempty"`
	Keyterms          []Keyterm      `json:"keyterms,omitempty"`
	BiGrams           []string       `json:"bi_grams,omitempty"`
	TriGrams          []string       `json:"tri_grams,omitempty"`
	POSFrequencies    map[string]int `json:"pos_frequencies,omitempty"`
	ExtractedKeywords []string       `json:"extracted_keywords,omitempty"`

	// Resume-specific fields.
	Name           []string `json:"name,omitempty"`
	Emails         []string `json:"emails,omitempty"`
	Phones         string   `json:"phones,omitempty"`
	Links          []string `json:"links,omitempty"`
	Education      string   `json:"education,omitempty"`
	EducationTitle []string `json:"education_title,omitempty"`
	Universities   []string `json:"universities,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	JobTitle       []string `json:"job_title,omitempty"`

	// Job-description-specific fields.
	Qualifications []string `json:"qualifications,omitempty"`
}

// CombinedSkillText returns the lower-cased concatenation of the
// record's skill set and cleaned text. The similarity engine's hard
// requirement filter searches this string.
func (r *ExtractionRecord) CombinedSkillText() string {
	var sb strings.Builder
	for _, s := range r.Skills {
		sb.WriteString(strings.ToLower(s))
		sb.WriteString(" ")
	}
	sb.WriteString(strings.ToLower(r.CleanText))
	return sb.String()
}

// HasSkill reports whether the record's skill set contains the given
// skill under case-insensitive exact comparison.
func (r *ExtractionRecord) HasSkill(skill string) bool {
	needle := strings.ToLower(strings.TrimSpace(skill))
	for _, s := range r.Skills {
		if strings.ToLower(s) == needle {
			return true
		}
	}
	return false
}

// KeytermText returns the record's keyterm phrases joined by spaces,
// falling back to the cleaned text when no keyterms were ranked. This
// is the text the similarity engine embeds.
func (r *ExtractionRecord) KeytermText() string {
	if len(r.Keyterms) == 0 {
		return r.CleanText
	}
	phrases := make([]string, 0, len(r.Keyterms))
	for _, kt := range r.Keyterms {
		phrases = append(phrases, kt.Phrase)
	}
	return strings.Join(phrases, " ")
}

// MatchResult pairs a candidate record with a job record and the score
// the similarity engine assigned to the pairing. Scores use the 0-100
// convention throughout this repository.
type MatchResult struct {
	ResumeID string  `json:"resume_id"`
	JobID    string  `json:"job_id"`
	Score    float64 `json:"score"`
}
