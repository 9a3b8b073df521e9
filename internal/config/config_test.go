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
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"rank_limit": 10, "port": 8080, "enable_ai": true}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.RankLimit)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.EnableAI)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_NegativeRankLimit(t *testing.T) {
	cfg := Config{RankLimit: -1}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rank_limit")
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{Port: 70000}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingDataFile(t *testing.T) {
	cfg := Config{JobsFile: filepath.Join(t.TempDir(), "missing.json")}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs_file not found")
}

func TestValidate_EmptyConfigPasses(t *testing.T) {
	cfg := Config{}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{JobsFile: "flags.json"}
	defaults := Config{
		JobsFile:       "defaults.json",
		CandidatesFile: "candidates.json",
		RankLimit:      5,
		Port:           9090,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "flags.json", merged.JobsFile, "explicit value wins")
	assert.Equal(t, "candidates.json", merged.CandidatesFile)
	assert.Equal(t, 5, merged.RankLimit)
	assert.Equal(t, 9090, merged.Port)
}

func TestMergeWithDefaults_BoolFlagsAlwaysWin(t *testing.T) {
	cfg := Config{Verbose: false, EnableAI: false}
	defaults := Config{Verbose: true, EnableAI: true}

	merged := cfg.MergeWithDefaults(defaults)

	assert.False(t, merged.Verbose)
	assert.False(t, merged.EnableAI)
}
