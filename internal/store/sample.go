package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/talent-match/internal/types"
)

//go:embed sample_jobs.json
var sampleJobsJSON []byte

//go:embed sample_candidates.json
var sampleCandidatesJSON []byte

// DefaultMemoryStore builds a provider from the embedded sample data set.
func DefaultMemoryStore() (*MemoryStore, error) {
	var jobs []types.Job
	if err := json.Unmarshal(sampleJobsJSON, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse embedded sample jobs: %w", err)
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(sampleCandidatesJSON, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse embedded sample candidates: %w", err)
	}

	return NewMemoryStore(jobs, candidates), nil
}
