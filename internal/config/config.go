// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Data sources
	JobsFile       string `json:"jobs_file,omitempty"`       // Path to jobs JSON file
	CandidatesFile string `json:"candidates_file,omitempty"` // Path to candidates JSON file
	SkillCatalog   string `json:"skill_catalog,omitempty"`   // Path to skill catalog JSON file
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL

	// AI augmentation
	APIKey   string `json:"api_key,omitempty"`   // Gemini API key
	EnableAI bool   `json:"enable_ai,omitempty"` // Use the LLM-backed analyzer when an API key is set

	// Behavior
	RankLimit int  `json:"rank_limit,omitempty"` // Default ranking result cap (0 = unlimited)
	Port      int  `json:"port,omitempty"`       // HTTP server port
	Verbose   bool `json:"verbose,omitempty"`    // Print detailed match breakdowns
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.RankLimit < 0 {
		return fmt.Errorf("config error: 'rank_limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	for _, pair := range []struct{ name, path string }{
		{"jobs_file", c.JobsFile},
		{"candidates_file", c.CandidatesFile},
		{"skill_catalog", c.SkillCatalog},
	} {
		if pair.path == "" {
			continue
		}
		if _, err := os.Stat(pair.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s not found: %s", pair.name, pair.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JobsFile == "" {
		result.JobsFile = defaults.JobsFile
	}
	if result.CandidatesFile == "" {
		result.CandidatesFile = defaults.CandidatesFile
	}
	if result.SkillCatalog == "" {
		result.SkillCatalog = defaults.SkillCatalog
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.RankLimit == 0 {
		result.RankLimit = defaults.RankLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields cannot distinguish unset from false, so flags always win.

	return result
}
