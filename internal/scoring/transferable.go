package scoring

import "github.com/jonathan/talent-match/internal/types"

// transferableScore measures how well the candidate's adjacent experience
// covers the requirements they do not directly hold. Directly held
// requirements are excluded from the average; a candidate who holds every
// requirement scores 0 here (the skill-match factor already covers them).
func (e *Engine) transferableScore(candidate *types.Candidate, job *types.Job) float64 {
	weighted := 0.0
	totalWeight := 0.0
	for _, req := range job.Requirements {
		if candidate.HasSkill(req.SkillID) {
			continue
		}
		weight := req.Weight()
		totalWeight += weight
		weighted += weight * e.requirementTransferability(candidate, req.SkillID)
	}

	if totalWeight == 0 {
		return 0
	}
	return clamp01(weighted / totalWeight)
}

// requirementTransferability returns the mean transferability across the
// candidate's experiences related to a missing skill, or 0 when none exist.
// Per experience: (1 - |difficulty delta|/5) x duration credit.
func (e *Engine) requirementTransferability(candidate *types.Candidate, skillID string) float64 {
	related := e.relatedExperiences(candidate, skillID)
	if len(related) == 0 {
		return 0
	}

	targetDifficulty := e.skillDifficulty(skillID)
	total := 0.0
	for _, exp := range related {
		sourceDifficulty := e.skillDifficulty(exp.SkillID)
		delta := float64(targetDifficulty - sourceDifficulty)
		if delta < 0 {
			delta = -delta
		}
		total += (1.0 - delta/maxComplexityLevel) * durationCredit(exp.DurationMonths)
	}
	return total / float64(len(related))
}

// skillDifficulty returns the registry difficulty for a skill, defaulting to
// mid-range for skills outside the catalog.
func (e *Engine) skillDifficulty(skillID string) int {
	if s, ok := e.registry.Skill(skillID); ok {
		return s.DifficultyLevel
	}
	return 3
}
