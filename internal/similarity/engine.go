// Package similarity scores how well a candidate record matches a job
// description record. Scoring is deliberately strict: a missing hard
// requirement zeroes the score before any vector math runs.
package similarity

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/textnorm"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultScale maps cosine similarity onto the 0-100 convention used
// across this repository.
const DefaultScale = 100

// WeightPolicy decides how much a term counts when weighting the
// embedding vectors. The default doubles job-description skills;
// deployments with different priorities plug in their own policy.
type WeightPolicy interface {
	TermWeight(term string, jobSkills []string) float64
}

// DefaultWeightPolicy weighs job skills at SkillWeight and every other
// term at 1.
type DefaultWeightPolicy struct {
	SkillWeight float64
}

func (p DefaultWeightPolicy) TermWeight(term string, jobSkills []string) float64 {
	for _, s := range jobSkills {
		if strings.EqualFold(s, term) {
			return p.SkillWeight
		}
	}
	return 1
}

// Engine computes match scores. Safe for concurrent use.
type Engine struct {
	provider nlp.Provider
	policy   WeightPolicy
	scale    float64
}

// Option adjusts Engine construction.
type Option func(*Engine)

// WithWeightPolicy replaces the default skill-doubling policy.
func WithWeightPolicy(policy WeightPolicy) Option {
	return func(e *Engine) { e.policy = policy }
}

// WithScale changes the output range, e.g. 1 for a 0-1 convention.
func WithScale(scale float64) Option {
	return func(e *Engine) { e.scale = scale }
}

func NewEngine(provider nlp.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider: provider,
		policy:   DefaultWeightPolicy{SkillWeight: 2},
		scale:    DefaultScale,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score rates candidate against job on the engine's scale.
//
// Required skills are filtered twice before any similarity math: each
// must occur in the candidate's combined skill text, and each must be
// in the candidate's extracted skill set. Either filter failing means
// a score of 0 with no further computation.
//
// Score is not symmetric: the hard filters only inspect the candidate,
// and both embeddings are weighted by the job's skill list, so swapping
// the arguments generally yields a different score.
func (e *Engine) Score(candidate, job *types.ExtractionRecord, requiredSkills []string) float64 {
	combined := candidate.CombinedSkillText()
	for _, req := range requiredSkills {
		if !strings.Contains(combined, strings.ToLower(strings.TrimSpace(req))) {
			return 0
		}
	}
	for _, req := range requiredSkills {
		if !candidate.HasSkill(req) {
			return 0
		}
	}

	// Standalone numbers (years, dates, counts) add noise to the
	// embedding and are stripped before vectorizing.
	candVec := e.weightedEmbedding(textnorm.StripNumbers(candidate.KeytermText()), job.Skills)
	jobVec := e.weightedEmbedding(textnorm.StripNumbers(job.KeytermText()), job.Skills)

	return cosine(candVec, jobVec) * e.scale
}

// Match wraps Score in a result carrying both record identifiers.
func (e *Engine) Match(candidate, job *types.ExtractionRecord, requiredSkills []string) types.MatchResult {
	return types.MatchResult{
		ResumeID: candidate.UniqueID,
		JobID:    job.UniqueID,
		Score:    e.Score(candidate, job, requiredSkills),
	}
}

// weightedEmbedding embeds text and boosts the contribution of every
// weighted term that actually occurs in the text. Terms the text never
// mentions add nothing, so padding a job posting with skills cannot
// inflate an unrelated resume's score.
func (e *Engine) weightedEmbedding(text string, jobSkills []string) []float64 {
	vec := e.provider.Embed(text)
	lower := strings.ToLower(text)
	for _, skill := range jobSkills {
		w := e.policy.TermWeight(skill, jobSkills)
		if w == 1 {
			continue
		}
		term := strings.ToLower(skill)
		if term == "" || !strings.Contains(lower, term) {
			continue
		}
		boost := e.provider.Embed(term)
		for i := range vec {
			vec[i] += (w - 1) * boost[i]
		}
	}
	return vec
}

// cosine returns the cosine similarity of two equal-length vectors,
// defining the zero-norm case as 0 rather than dividing by it.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
