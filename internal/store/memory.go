package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-match/internal/types"
)

// MemoryStore is an in-memory Provider. It is read-only after construction
// and safe for concurrent use.
type MemoryStore struct {
	jobs       map[string]types.Job
	candidates map[string]types.Candidate
	jobOrder   []string
	candOrder  []string
}

// NewMemoryStore builds a provider from job and candidate slices, preserving
// the original collection order for listings.
func NewMemoryStore(jobs []types.Job, candidates []types.Candidate) *MemoryStore {
	s := &MemoryStore{
		jobs:       make(map[string]types.Job, len(jobs)),
		candidates: make(map[string]types.Candidate, len(candidates)),
	}
	for _, job := range jobs {
		if _, exists := s.jobs[job.ID]; exists {
			continue
		}
		s.jobs[job.ID] = job
		s.jobOrder = append(s.jobOrder, job.ID)
	}
	for _, candidate := range candidates {
		if _, exists := s.candidates[candidate.ID]; exists {
			continue
		}
		s.candidates[candidate.ID] = candidate
		s.candOrder = append(s.candOrder, candidate.ID)
	}
	return s
}

// LoadMemoryStore reads jobs and candidates from JSON files.
func LoadMemoryStore(jobsPath, candidatesPath string) (*MemoryStore, error) {
	var jobs []types.Job
	if err := readJSONFile(jobsPath, &jobs); err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	var candidates []types.Candidate
	if err := readJSONFile(candidatesPath, &candidates); err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	return NewMemoryStore(jobs, candidates), nil
}

// FindJobByID returns the job for an id or ErrJobNotFound.
func (s *MemoryStore) FindJobByID(_ context.Context, id string) (*types.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, &ErrJobNotFound{ID: id}
	}
	return &job, nil
}

// FindCandidateByID returns the candidate for an id or ErrCandidateNotFound.
func (s *MemoryStore) FindCandidateByID(_ context.Context, id string) (*types.Candidate, error) {
	candidate, ok := s.candidates[id]
	if !ok {
		return nil, &ErrCandidateNotFound{ID: id}
	}
	return &candidate, nil
}

// ListJobs returns all jobs in original collection order.
func (s *MemoryStore) ListJobs(_ context.Context) ([]types.Job, error) {
	jobs := make([]types.Job, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		jobs = append(jobs, s.jobs[id])
	}
	return jobs, nil
}

// ListCandidates returns all candidates in original collection order.
func (s *MemoryStore) ListCandidates(_ context.Context) ([]types.Candidate, error) {
	candidates := make([]types.Candidate, 0, len(s.candOrder))
	for _, id := range s.candOrder {
		candidates = append(candidates, s.candidates[id])
	}
	return candidates, nil
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
