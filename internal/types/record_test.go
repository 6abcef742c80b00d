package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedSkillText_IncludesSkillsAndCleanText(t *testing.T) {
	r := &ExtractionRecord{
		Skills:    []string{"Python", "SQL"},
		CleanText: "data engineer warehouse",
	}

	text := r.CombinedSkillText()

	assert.Contains(t, text, "python")
	assert.Contains(t, text, "sql")
	assert.Contains(t, text, "warehouse")
}

func TestHasSkill_CaseInsensitive(t *testing.T) {
	r := &ExtractionRecord{Skills: []string{"Kubernetes", "Go"}}

	assert.True(t, r.HasSkill("kubernetes"))
	assert.True(t, r.HasSkill(" GO "))
	assert.False(t, r.HasSkill("Terraform"))
}

func TestKeytermText_FallsBackToCleanText(t *testing.T) {
	r := &ExtractionRecord{CleanText: "distributed system design"}
	assert.Equal(t, "distributed system design", r.KeytermText())

	r.Keyterms = []Keyterm{{Phrase: "distributed system", Score: 0.8}, {Phrase: "design", Score: 0.2}}
	assert.Equal(t, "distributed system design", r.KeytermText())
}

func TestExtractionRecord_JSONOmitsAbsentFields(t *testing.T) {
	r := &ExtractionRecord{UniqueID: "abc", DocType: DocumentResume, RawText: ""}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))

	assert.Equal(t, "abc", flat["unique_id"])
	assert.Contains(t, flat, "raw_text")
	assert.NotContains(t, flat, "skills")
	assert.NotContains(t, flat, "emails")
	assert.NotContains(t, flat, "qualifications")
}
