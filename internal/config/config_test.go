package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesFields(t *testing.T) {
	path := writeConfig(t, `{"skill_weight": 3, "workers": 8, "verbose": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.SkillWeight)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `{"skill_weight": 0.5}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SkillWeight")
}

func TestLoad_ValidationRejectsMissingReferenceFile(t *testing.T) {
	path := writeConfig(t, `{"skills_file": "/nonexistent/skills.csv"}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestWithDefaults(t *testing.T) {
	var cfg Config
	cfg.WithDefaults()
	assert.Equal(t, 2.0, cfg.SkillWeight)
	assert.Equal(t, 100.0, cfg.Scale)
	assert.Equal(t, 20, cfg.TopKeyterms)
	assert.Equal(t, 4, cfg.Workers)
}

func TestWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{Scale: 1, Workers: 2}
	cfg.WithDefaults()
	assert.Equal(t, 1.0, cfg.Scale)
	assert.Equal(t, 2, cfg.Workers)
}

func TestFromEnv_ConfigValueWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := Config{APIKey: "file-key"}
	cfg.FromEnv()
	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestFromEnv_FillsFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matcher")
	var cfg Config
	cfg.FromEnv()
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
}
