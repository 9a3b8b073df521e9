package scoring

import (
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

const (
	// gapRiskThresholdMonths flags a single gap large enough to be a risk.
	gapRiskThresholdMonths = 12
	// missingSkillRiskRatio flags a match where most requirements are absent.
	missingSkillRiskRatio = 0.5
	// minExperienceRecords below which the history is too thin to trust.
	minExperienceRecords = 2
	// learnabilityIndicatorBoost scales the learning-indicator contribution
	// to gap learnability.
	learnabilityIndicatorBoost = 0.3
)

// buildBreakdown assembles the explainability record: which requirements
// matched, which are missing or covered by related experience, per-skill
// duration gaps, and qualitative potential/risk flags.
func (e *Engine) buildBreakdown(candidate *types.Candidate, job *types.Job, learningFactor float64) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		MatchedSkills:       []string{},
		MissingSkills:       []string{},
		RelatedSkills:       []string{},
		ExperienceGaps:      []types.ExperienceGap{},
		PotentialIndicators: []string{},
		RiskFactors:         []string{},
	}

	seenMatched := make(map[string]bool)
	seenMissing := make(map[string]bool)
	seenRelated := make(map[string]bool)

	for _, req := range job.Requirements {
		switch {
		case candidate.HasSkill(req.SkillID):
			if !seenMatched[req.SkillID] {
				seenMatched[req.SkillID] = true
				breakdown.MatchedSkills = append(breakdown.MatchedSkills, req.SkillID)
			}
		case len(e.relatedExperiences(candidate, req.SkillID)) > 0:
			if !seenRelated[req.SkillID] {
				seenRelated[req.SkillID] = true
				breakdown.RelatedSkills = append(breakdown.RelatedSkills, req.SkillID)
			}
		default:
			if !seenMissing[req.SkillID] {
				seenMissing[req.SkillID] = true
				breakdown.MissingSkills = append(breakdown.MissingSkills, req.SkillID)
			}
		}

		if gap, ok := e.experienceGap(candidate, req, learningFactor); ok {
			breakdown.ExperienceGaps = append(breakdown.ExperienceGaps, gap)
		}
	}

	breakdown.PotentialIndicators = potentialIndicators(candidate)
	breakdown.RiskFactors = riskFactors(candidate, breakdown)
	return breakdown
}

// experienceGap returns the duration shortfall for one requirement, reporting
// whether a positive gap exists. A fully absent experience record counts as a
// full-duration gap.
func (e *Engine) experienceGap(candidate *types.Candidate, req types.JobRequirement, learningFactor float64) (types.ExperienceGap, bool) {
	candidateMonths := 0
	if exp := candidate.ExperienceForSkill(req.SkillID); exp != nil {
		candidateMonths = exp.DurationMonths
	}

	gap := req.MinDurationMonths - candidateMonths
	if gap <= 0 {
		return types.ExperienceGap{}, false
	}

	difficulty := float64(e.skillDifficulty(req.SkillID))
	learnability := (1.0 - difficulty/maxComplexityLevel) + learningFactor*learnabilityIndicatorBoost
	if learnability > 1.0 {
		learnability = 1.0
	}
	if learnability < 0 {
		learnability = 0
	}

	return types.ExperienceGap{
		SkillID:                 req.SkillID,
		RequiredDurationMonths:  req.MinDurationMonths,
		CandidateDurationMonths: candidateMonths,
		Gap:                     gap,
		Learnability:            learnability,
	}, true
}

// potentialIndicators collects qualitative positive flags for the breakdown.
func potentialIndicators(candidate *types.Candidate) []string {
	indicators := []string{}
	if hasTechnicalEducation(candidate.Education) {
		indicators = append(indicators, "Computer science or related education")
	}
	if hasLeadership(candidate.Experience) {
		indicators = append(indicators, "Leadership experience")
	}
	return indicators
}

// hasTechnicalEducation reports whether any degree field looks CS-adjacent.
func hasTechnicalEducation(education []types.Education) bool {
	for _, edu := range education {
		field := strings.ToLower(edu.Field)
		if strings.Contains(field, "computer") || strings.Contains(field, "software") ||
			strings.Contains(field, "information") || strings.Contains(field, "engineering") {
			return true
		}
	}
	return false
}

// riskFactors collects qualitative negative flags for the breakdown.
func riskFactors(candidate *types.Candidate, breakdown types.ScoreBreakdown) []string {
	risks := []string{}

	totalRequired := len(breakdown.MatchedSkills) + len(breakdown.MissingSkills) + len(breakdown.RelatedSkills)
	if totalRequired > 0 && float64(len(breakdown.MissingSkills))/float64(totalRequired) > missingSkillRiskRatio {
		risks = append(risks, "More than half of the required skills are missing")
	}

	for _, gap := range breakdown.ExperienceGaps {
		if gap.Gap > gapRiskThresholdMonths {
			risks = append(risks, "At least one experience gap exceeds 12 months")
			break
		}
	}

	if len(candidate.Experience) < minExperienceRecords {
		risks = append(risks, "Limited experience history (fewer than 2 records)")
	}

	return risks
}
