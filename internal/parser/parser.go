// Package parser orchestrates one document's trip through the
// pipeline: normalize, extract fields, rank keyterms, assemble the
// canonical record. Field strategies are independent; one failing is
// logged and skipped, never fatal for the document.
package parser

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/keyterms"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/ocr"
	"github.com/jonathan/resume-matcher/internal/refdata"
	"github.com/jonathan/resume-matcher/internal/textnorm"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Parser turns raw document text into extraction records. Construct
// once and share; all state is immutable after New.
type Parser struct {
	cleaner     *textnorm.Cleaner
	extractor   *extraction.Extractor
	keyterms    *keyterms.Extractor
	topKeyterms int
	expandLinks bool
	logger      *zap.Logger
}

// Option adjusts Parser construction.
type Option func(*Parser)

// WithTopKeyterms changes how many ranked keyterms each record keeps.
func WithTopKeyterms(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.topKeyterms = n
		}
	}
}

// WithLinkExpansion makes resume parsing follow each extracted http
// link and merge the allow-listed hrefs found on the fetched page.
// Off by default; it turns an offline parse into one that performs
// network requests.
func WithLinkExpansion() Option {
	return func(p *Parser) { p.expandLinks = true }
}

// New wires a Parser. keywords may be nil to run without the
// generative skill strategy; logger may be nil for silence.
func New(provider nlp.Provider, lib *refdata.Library, keywords extraction.KeywordModel, logger *zap.Logger, opts ...Option) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Parser{
		cleaner:     textnorm.NewCleaner(provider),
		extractor:   extraction.New(provider, lib, keywords),
		keyterms:    keyterms.NewExtractor(provider),
		topKeyterms: keyterms.DefaultTopN,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseResume builds a resume record from raw text.
func (p *Parser) ParseResume(ctx context.Context, raw string) (*types.ExtractionRecord, error) {
	return p.parse(ctx, raw, nil, types.DocumentResume)
}

// ParseScannedResume segments OCR-recovered text into sections first,
// then parses with the sections as structured input. Segmentation
// failing entirely is a document-level error; the raw text cannot be
// trusted field by field.
func (p *Parser) ParseScannedResume(ctx context.Context, raw string) (*types.ExtractionRecord, error) {
	sections, err := ocr.Segment(raw)
	if err != nil {
		return nil, &DocumentError{DocType: types.DocumentResume, Stage: "segmentation", Cause: err}
	}
	return p.parse(ctx, raw, sections, types.DocumentResume)
}

// ParseResumeWithSections parses a resume whose sections were already
// recovered, e.g. loaded from an OCR service's JSON output.
func (p *Parser) ParseResumeWithSections(ctx context.Context, raw string, sections ocr.Sections) (*types.ExtractionRecord, error) {
	return p.parse(ctx, raw, sections, types.DocumentResume)
}

// ParseJobDescription builds a job description record from raw text.
func (p *Parser) ParseJobDescription(ctx context.Context, raw string) (*types.ExtractionRecord, error) {
	return p.parse(ctx, raw, nil, types.DocumentJobDescription)
}

func (p *Parser) parse(ctx context.Context, raw string, sections ocr.Sections, docType types.DocumentType) (*types.ExtractionRecord, error) {
	// 1. Normalize. Clean never fails; empty input cleans to empty.
	clean := p.cleaner.Clean(raw)

	record := &types.ExtractionRecord{
		UniqueID:  uuid.New().String(),
		DocType:   docType,
		RawText:   raw,
		CleanText: clean,
	}
	in := extraction.Input{RawText: raw, CleanText: clean, Sections: sections}

	// 2. Field strategies. Each runs isolated; a panic or error leaves
	// its field absent and the rest of the record intact.
	if docType == types.DocumentResume {
		p.runStrategy("name", func() { record.Name = p.extractor.Names(raw) })
		p.runStrategy("emails", func() { record.Emails = p.extractor.Emails(raw) })
		p.runStrategy("phones", func() { record.Phones = p.extractor.Phone(raw) })
		p.runStrategy("links", func() {
			record.Links = p.extractor.Links(raw)
			if p.expandLinks {
				record.Links = p.expandedLinks(ctx, record.Links)
			}
		})
		p.runStrategy("education", func() { record.Education = p.extractor.Education(in) })
		p.runStrategy("education_title", func() { record.EducationTitle = p.extractor.DegreeTitles(raw) })
		p.runStrategy("universities", func() { record.Universities = p.extractor.Universities(in) })
		p.runStrategy("experience", func() { record.Experience = p.extractor.Experience(in) })
		p.runStrategy("job_title", func() { record.JobTitle = p.extractor.JobTitles(clean) })
	} else {
		p.runStrategy("qualifications", func() { record.Qualifications = p.extractor.DegreeTitles(raw) })
		p.runStrategy("extracted_keywords", func() { record.ExtractedKeywords = p.extractor.Nouns(clean) })
	}

	// Skills are extracted for both document types; job skills drive
	// the similarity engine's weighting.
	p.runStrategy("skills", func() {
		skills, err := p.extractor.Skills(ctx, in)
		if err != nil {
			p.logger.Warn("keyword model degraded", zap.String("field", "skills"), zap.Error(err))
		}
		record.Skills = skills
	})
	p.runStrategy("entities", func() { record.Entities = p.extractor.Entities(raw) })

	// 3. Keyterms and n-grams over cleaned text.
	p.runStrategy("keyterms", func() { record.Keyterms = p.keyterms.RankKeyterms(clean, p.topKeyterms) })
	p.runStrategy("bi_grams", func() { record.BiGrams = p.keyterms.Bigrams(clean) })
	p.runStrategy("tri_grams", func() { record.TriGrams = p.keyterms.Trigrams(clean) })
	p.runStrategy("pos_frequencies", func() {
		record.POSFrequencies = textnorm.CountTopWords(clean, textnorm.TopWordCount)
	})

	return record, nil
}

// expandedLinks follows each http link and merges the hrefs its page
// carries. A failing fetch is logged and contributes nothing.
func (p *Parser) expandedLinks(ctx context.Context, links []string) []string {
	merged := links
	for _, link := range links {
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			continue
		}
		found, err := p.extractor.ExpandLinks(ctx, link)
		if err != nil {
			p.logger.Warn("link expansion failed",
				zap.String("url", link),
				zap.Error(err))
			continue
		}
		merged = append(merged, found...)
	}
	return extraction.MergeCandidates(merged)
}

// runStrategy isolates one field strategy, converting a panic into a
// logged skip.
func (p *Parser) runStrategy(field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("field strategy failed",
				zap.String("field", field),
				zap.Any("panic", r))
		}
	}()
	fn()
}
