package scoring

import "github.com/jonathan/talent-match/internal/types"

// Credit multipliers for related-experience adjacency. A direct hit earns a
// small related bonus on top of full credit; a miss earns partial credit only,
// capped below a direct hit.
const (
	directHitRelatedBonus = 0.3
	missRelatedCredit     = 0.5
)

// skillMatchScore awards full credit for each requirement the candidate holds
// directly, plus graduated partial credit for related experience. Required
// skills weigh double. Returns 0 for a job with no requirements.
func (e *Engine) skillMatchScore(candidate *types.Candidate, job *types.Job) float64 {
	if len(job.Requirements) == 0 {
		return 0
	}

	awarded := 0.0
	totalWeight := 0.0
	for _, req := range job.Requirements {
		weight := req.Weight()
		totalWeight += weight

		relatedBonus := e.relatedExperienceBonus(candidate, req.SkillID)
		if candidate.HasSkill(req.SkillID) {
			awarded += weight*1.0 + weight*relatedBonus*directHitRelatedBonus
		} else {
			awarded += weight * relatedBonus * missRelatedCredit
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return clamp01(awarded / totalWeight)
}

// relatedExperienceBonus returns the average duration credit across the
// candidate's experiences related to a skill, in [0,1].
func (e *Engine) relatedExperienceBonus(candidate *types.Candidate, skillID string) float64 {
	related := e.relatedExperiences(candidate, skillID)
	if len(related) == 0 {
		return 0
	}

	totalMonths := 0
	for _, exp := range related {
		totalMonths += exp.DurationMonths
	}
	return durationCredit(totalMonths / len(related))
}
