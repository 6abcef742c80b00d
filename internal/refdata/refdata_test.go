package refdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	lib, err := Load(Paths{})
	require.NoError(t, err)

	assert.NotEmpty(t, lib.Skills)
	assert.NotEmpty(t, lib.Universities)
	assert.NotEmpty(t, lib.Titles)

	assert.Contains(t, lib.Skills, "Kubernetes")
	assert.Contains(t, lib.Universities, "stanford university")
	assert.Contains(t, lib.Titles, "software engineer")
}

func TestLoad_UniversitiesAndTitlesAreLowercase(t *testing.T) {
	lib, err := Load(Paths{})
	require.NoError(t, err)

	for _, u := range lib.Universities {
		assert.Equal(t, strings.ToLower(u), u)
	}
	for _, title := range lib.Titles {
		assert.Equal(t, strings.ToLower(title), title)
	}
}

func TestLoad_OverrideFiles(t *testing.T) {
	dir := t.TempDir()

	skillsPath := filepath.Join(dir, "skills.csv")
	require.NoError(t, os.WriteFile(skillsPath, []byte("Erlang\nZig\n"), 0o644))

	lib, err := Load(Paths{SkillsFile: skillsPath})
	require.NoError(t, err)

	assert.Equal(t, []string{"Erlang", "Zig"}, lib.Skills)
	// Unset paths still use the embedded defaults.
	assert.NotEmpty(t, lib.Universities)
	assert.NotEmpty(t, lib.Titles)
}

func TestLoad_MissingOverrideFails(t *testing.T) {
	_, err := Load(Paths{TitlesFile: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "job title list", cfgErr.Resource)
}

func TestLoad_DeduplicatesCaseInsensitively(t *testing.T) {
	dir := t.TempDir()

	titlesPath := filepath.Join(dir, "titles.txt")
	require.NoError(t, os.WriteFile(titlesPath, []byte("Data Engineer\ndata engineer\nData Analyst\n"), 0o644))

	lib, err := Load(Paths{TitlesFile: titlesPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"data engineer", "data analyst"}, lib.Titles)
}
