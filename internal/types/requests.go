package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchRequest is the payload for a single candidate/job match.
type MatchRequest struct {
	JobID       string `json:"job_id" validate:"required,min=1"`
	CandidateID string `json:"candidate_id" validate:"required,min=1"`
}

// RankCandidatesRequest asks for the best candidates for a job.
type RankCandidatesRequest struct {
	JobID string `json:"job_id" validate:"required,min=1"`
	Limit int    `json:"limit,omitempty" validate:"gte=0"`
}

// RankJobsRequest asks for the best jobs for a candidate.
type RankJobsRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,min=1"`
	Limit       int    `json:"limit,omitempty" validate:"gte=0"`
}

// ExtractSkillsRequest carries free text for skill extraction.
type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankCandidatesRequest using the validator.
func (r *RankCandidatesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankJobsRequest using the validator.
func (r *RankJobsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExtractSkillsRequest using the validator.
func (r *ExtractSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
