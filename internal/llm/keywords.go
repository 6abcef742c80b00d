package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// maxKeywordInputLen bounds how much cleaned text goes into one
// prompt. Cleaned resumes rarely exceed this; anything longer is
// truncated rather than split.
const maxKeywordInputLen = 8000

const keywordPromptPreamble = `You are an expert resume and job posting analyst.
Extract the technical skills, tools and competencies mentioned in the text below.
Return ONLY valid JSON of the form {"keywords": ["skill", ...]}.
Copy each skill as it appears in the text; do not invent skills that are not mentioned.`

// KeywordExtractor asks a generative model for the keyphrases of
// cleaned document text. It implements the keyword strategy consumed
// by skill extraction.
type KeywordExtractor struct {
	client Client
	tier   ModelTier
}

// NewKeywordExtractor wraps a client. Tier defaults to lite when
// empty.
func NewKeywordExtractor(client Client, tier ModelTier) *KeywordExtractor {
	if tier == "" {
		tier = TierLite
	}
	return &KeywordExtractor{client: client, tier: tier}
}

// Keywords prompts the model and parses its JSON response. Blank and
// duplicate phrases are dropped; order follows the model's output.
func (k *KeywordExtractor) Keywords(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if len(text) > maxKeywordInputLen {
		text = text[:maxKeywordInputLen]
	}

	prompt := buildKeywordPrompt(text)
	raw, err := k.client.GenerateJSON(ctx, prompt, k.tier)
	if err != nil {
		return nil, fmt.Errorf("keyword generation failed: %w", err)
	}

	var parsed struct {
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse keyword response: %w", err)
	}

	seen := make(map[string]bool, len(parsed.Keywords))
	var keywords []string
	for _, kw := range parsed.Keywords {
		kw = strings.TrimSpace(kw)
		key := strings.ToLower(kw)
		if kw == "" || seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, kw)
	}
	return keywords, nil
}

func buildKeywordPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString(keywordPromptPreamble)
	sb.WriteString("\n\nInput text:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}
