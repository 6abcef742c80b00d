// Package extraction implements the per-field strategies that pull
// structured values out of resume and job description text. Each
// strategy is pure: it reads raw or cleaned text plus immutable
// reference data and returns values, never touching shared state.
package extraction

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/ocr"
	"github.com/jonathan/resume-matcher/internal/refdata"
)

// KeywordModel produces ranked keyphrases for cleaned text. The
// production implementation calls a generative model; extraction
// treats it as optional and degrades to the dictionary strategies when
// it is absent or failing.
type KeywordModel interface {
	Keywords(ctx context.Context, text string) ([]string, error)
}

// Extractor bundles the linguistic provider and reference data the
// field strategies share. Safe for concurrent use once constructed.
type Extractor struct {
	provider nlp.Provider
	lib      *refdata.Library
	keywords KeywordModel
}

// New builds an Extractor. keywords may be nil, in which case skill
// extraction relies on the dictionary and OCR strategies alone.
func New(provider nlp.Provider, lib *refdata.Library, keywords KeywordModel) *Extractor {
	return &Extractor{provider: provider, lib: lib, keywords: keywords}
}

// Input carries one document's text through the field strategies.
// Sections is non-nil only for OCR-derived documents.
type Input struct {
	RawText   string
	CleanText string
	Sections  ocr.Sections
}

// MergeCandidates unions candidate lists the way every strategy does:
// case-insensitive, first-seen order and casing win.
func MergeCandidates(lists ...[]string) []string {
	var all []string
	for _, list := range lists {
		all = append(all, list...)
	}
	return dedupe(all)
}
