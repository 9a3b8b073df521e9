package scoring

import "github.com/jonathan/talent-match/internal/types"

const (
	// noExperienceCredit is the residual factor when the candidate has no
	// logged experience for a required skill. Absence of a record is a small
	// credit, not total failure.
	noExperienceCredit = 0.1

	// leadershipFullCredit and leadershipPartialCredit reward having led work
	// on the required skill.
	leadershipFullCredit    = 1.0
	leadershipPartialCredit = 0.5

	maxComplexityLevel = 5.0
)

// experienceScore averages four sub-factors per requirement (duration ratio,
// complexity, leadership, level alignment) and weights required skills double.
func (e *Engine) experienceScore(candidate *types.Candidate, job *types.Job) float64 {
	if len(job.Requirements) == 0 {
		return 0
	}

	weighted := 0.0
	totalWeight := 0.0
	for _, req := range job.Requirements {
		weight := req.Weight()
		totalWeight += weight
		weighted += weight * e.requirementExperienceFactor(candidate, req)
	}

	if totalWeight == 0 {
		return 0
	}
	return clamp01(weighted / totalWeight)
}

// requirementExperienceFactor scores one requirement against the candidate's
// matching experience record, in [0,1].
func (e *Engine) requirementExperienceFactor(candidate *types.Candidate, req types.JobRequirement) float64 {
	exp := candidate.ExperienceForSkill(req.SkillID)
	if exp == nil {
		return noExperienceCredit
	}

	durationRatio := 1.0
	if req.MinDurationMonths > 0 {
		durationRatio = float64(exp.DurationMonths) / float64(req.MinDurationMonths)
		if durationRatio > 1.0 {
			durationRatio = 1.0
		}
	}

	complexityRatio := float64(exp.ComplexityLevel) / maxComplexityLevel

	leadership := leadershipPartialCredit
	if exp.HasLeadershipRole {
		leadership = leadershipFullCredit
	}

	levelDelta := float64(exp.ComplexityLevel - req.RequiredLevel)
	if levelDelta < 0 {
		levelDelta = -levelDelta
	}
	levelAlignment := 1.0 - levelDelta/maxComplexityLevel
	if levelAlignment < 0 {
		levelAlignment = 0
	}

	return (durationRatio + complexityRatio + leadership + levelAlignment) / 4.0
}
