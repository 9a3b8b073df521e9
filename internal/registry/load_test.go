package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	path := writeTempCatalog(t, `{
		"skills": [
			{"id": "rust", "canonical_name": "Rust", "difficulty_level": 4, "time_to_proficiency_months": 9},
			{"id": "go", "canonical_name": "Go", "difficulty_level": 3, "time_to_proficiency_months": 6}
		],
		"relationships": [
			{"source_skill": "rust", "target_skill": "go", "type": "related", "strength": 0.6}
		]
	}`)

	reg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Contains(t, reg.RelatedIDs("rust"), "go")
}

func TestLoad_EmptyCatalog(t *testing.T) {
	path := writeTempCatalog(t, `{"skills": []}`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no skills")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeTempCatalog(t, `{not json`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
