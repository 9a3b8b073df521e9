package matching

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/talent-match/internal/types"
)

const (
	// maxRecommendations caps the list presented to callers.
	maxRecommendations = 5
	// trainingScoreThreshold triggers a generic training suggestion.
	trainingScoreThreshold = 0.7
	// recentDegreeYears mirrors the potential-score recency window.
	recentDegreeYears = 5
)

// buildRecommendations assembles capped, ordered suggestions. AI-sourced
// recommendations are spliced in ahead of the deterministic ones so they
// survive the cap.
func (o *Orchestrator) buildRecommendations(candidate *types.Candidate, score types.MatchingScore, sig *signal) []string {
	recommendations := []string{}

	if !sig.empty() {
		if best := sig.bestTransfer(); best != nil && len(best.TransferPath) > 0 {
			recommendations = append(recommendations, fmt.Sprintf("Build on %s experience to pick up %s (suggested path: %s).",
				o.resolver.Normalize(best.FromSkill), o.resolver.Normalize(best.ToSkill),
				strings.Join(best.TransferPath, " -> ")))
		}
		if fastest := sig.fastestLearning(); fastest != nil && fastest.EstimatedMonths > 0 {
			recommendations = append(recommendations, fmt.Sprintf("Start with %s: estimated %d months to working proficiency.",
				o.resolver.Normalize(fastest.Skill), fastest.EstimatedMonths))
		}
		if sig.culturalFit != nil {
			recommendations = append(recommendations, sig.culturalFit.Tips...)
		}
	}

	breakdown := score.Breakdown
	for _, missing := range breakdown.MissingSkills {
		recommendations = append(recommendations, fmt.Sprintf("Learn %s to close a core requirement.",
			o.resolver.Normalize(missing)))
	}

	_, significant := splitGaps(breakdown.ExperienceGaps)
	for _, skillID := range significant {
		recommendations = append(recommendations, fmt.Sprintf("Deepen %s experience to close a gap of more than 6 months.",
			o.resolver.Normalize(skillID)))
	}

	if score.OverallScore < trainingScoreThreshold {
		recommendations = append(recommendations, "Consider structured training to strengthen the overall profile for this role.")
	}
	if !anyLeadership(candidate.Experience) {
		recommendations = append(recommendations, "Seek a leadership opportunity on an upcoming project.")
	}
	if !anyRecentDegree(candidate.Education) {
		recommendations = append(recommendations, "A recent certification or course would refresh the education profile.")
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func anyLeadership(experience []types.Experience) bool {
	for _, exp := range experience {
		if exp.HasLeadershipRole {
			return true
		}
	}
	return false
}

func anyRecentDegree(education []types.Education) bool {
	currentYear := time.Now().Year()
	for _, edu := range education {
		if edu.GraduationYear > 0 && currentYear-edu.GraduationYear <= recentDegreeYears {
			return true
		}
	}
	return false
}
