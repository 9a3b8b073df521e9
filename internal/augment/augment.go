// Package augment provides the AI augmentation collaborator consumed by the
// match orchestrator: skill-transferability analysis, learning-potential and
// cultural-fit assessments, and experience-claim validation. Every analysis
// kind has a deterministic local fallback so augmentation never blocks the
// deterministic score from being returned.
package augment

import "context"

// TransferabilityAnalysis describes how well experience with one skill
// transfers to another.
type TransferabilityAnalysis struct {
	FromSkill       string   `json:"from_skill"`
	ToSkill         string   `json:"to_skill"`
	Score           float64  `json:"score"` // 0..1
	TransferPath    []string `json:"transfer_path,omitempty"`
	EstimatedMonths int      `json:"estimated_months"`
	Reasoning       string   `json:"reasoning,omitempty"`
}

// LearningAssessment estimates how quickly a candidate can pick up a skill.
type LearningAssessment struct {
	Skill           string   `json:"skill"`
	Potential       float64  `json:"potential"` // 0..1
	EstimatedMonths int      `json:"estimated_months"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// CulturalFitAssessment summarizes candidate/company alignment.
type CulturalFitAssessment struct {
	Score     float64  `json:"score"` // 0..1
	Strengths []string `json:"strengths,omitempty"`
	Concerns  []string `json:"concerns,omitempty"`
	Tips      []string `json:"tips,omitempty"`
}

// ExperienceClaim is one experience record submitted for validation.
type ExperienceClaim struct {
	SkillID            string `json:"skill_id"`
	DurationMonths     int    `json:"duration_months"`
	ComplexityLevel    int    `json:"complexity_level"`
	ProjectDescription string `json:"project_description,omitempty"`
}

// ExperienceValidation is the credibility assessment for one claim.
type ExperienceValidation struct {
	SkillID     string   `json:"skill_id"`
	Credibility float64  `json:"credibility"` // 0..1
	Flags       []string `json:"flags,omitempty"`
}

// Analyzer is the augmentation interface consumed by the orchestrator. Each
// call accepts plain strings/numbers and returns a small structured record so
// the orchestrator's merge logic is checked at compile time.
type Analyzer interface {
	AnalyzeSkillTransferability(ctx context.Context, fromSkill, toSkill string, months int) (TransferabilityAnalysis, error)
	AssessLearningPotential(ctx context.Context, candidateSummary, skill string) (LearningAssessment, error)
	AssessCulturalFit(ctx context.Context, candidateSummary, companyProfile string) (CulturalFitAssessment, error)
	ValidateExperience(ctx context.Context, claim ExperienceClaim) (ExperienceValidation, error)
}
