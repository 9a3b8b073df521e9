package types

// MatchingScore holds the deterministic multi-factor score for one
// candidate/job pair. All values are in [0,1]. Derived per request, never
// persisted.
type MatchingScore struct {
	OverallScore            float64        `json:"overall_score"`
	SkillMatchScore         float64        `json:"skill_match_score"`
	ExperienceScore         float64        `json:"experience_score"`
	TransferableSkillsScore float64        `json:"transferable_skills_score"`
	PotentialScore          float64        `json:"potential_score"`
	Breakdown               ScoreBreakdown `json:"breakdown"`
}

// ScoreBreakdown is the explainability record behind a MatchingScore.
type ScoreBreakdown struct {
	MatchedSkills       []string        `json:"matched_skills"`
	MissingSkills       []string        `json:"missing_skills"`
	RelatedSkills       []string        `json:"related_skills"`
	ExperienceGaps      []ExperienceGap `json:"experience_gaps"`
	PotentialIndicators []string        `json:"potential_indicators"`
	RiskFactors         []string        `json:"risk_factors"`
}

// ExperienceGap records a duration shortfall against one requirement.
type ExperienceGap struct {
	SkillID                 string  `json:"skill_id"`
	RequiredDurationMonths  int     `json:"required_duration_months"`
	CandidateDurationMonths int     `json:"candidate_duration_months"`
	Gap                     int     `json:"gap"`          // max(0, required - candidate)
	Learnability            float64 `json:"learnability"` // 0..1, higher is easier to close
}

// MatchingResult is the orchestrator's request-scoped output.
type MatchingResult struct {
	Candidate       *Candidate    `json:"candidate"`
	Job             *Job          `json:"job"`
	Score           MatchingScore `json:"score"`
	Explanation     string        `json:"explanation"`
	Recommendations []string      `json:"recommendations"`
	Confidence      float64       `json:"confidence"` // clamped to [0.3, 1.0]
}
