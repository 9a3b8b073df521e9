package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-match/internal/types"
)

// CatalogFile is the JSON document shape for an external skill catalog.
type CatalogFile struct {
	Skills        []types.Skill             `json:"skills"`
	Relationships []types.SkillRelationship `json:"relationships,omitempty"`
}

// Load reads a skill catalog from a JSON file and builds a Registry from it.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill catalog %s: %w", path, err)
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse skill catalog %s: %w", path, err)
	}

	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("skill catalog %s contains no skills", path)
	}

	r, err := New(file.Skills, file.Relationships)
	if err != nil {
		return nil, fmt.Errorf("invalid skill catalog %s: %w", path, err)
	}
	return r, nil
}
