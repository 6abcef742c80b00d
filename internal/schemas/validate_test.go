package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

const minimalSchema = `{
	"type": "object",
	"required": ["unique_id"],
	"properties": {
		"unique_id": {"type": "string"},
		"score": {"type": "number", "minimum": 0}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"unique_id": "abc", "score": 12.5}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"score": 1}`)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.NotEmpty(t, valErr.Errors)
	assert.Contains(t, valErr.Error(), "unique_id")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateRecordJSON_RealRecord(t *testing.T) {
	record := &types.ExtractionRecord{
		UniqueID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		DocType:   types.DocumentResume,
		RawText:   "raw",
		CleanText: "clean",
		Skills:    []string{"Python"},
	}
	jsonBytes, err := json.Marshal(record)
	require.NoError(t, err)

	assert.NoError(t, ValidateRecordJSON(jsonBytes))
}

func TestValidateRecordJSON_RejectsMalformedRecord(t *testing.T) {
	err := ValidateRecordJSON([]byte(`{"doc_type": "resume"}`))
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Equal(t, "", ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
