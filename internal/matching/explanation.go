package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// minorGapCeilingMonths separates minor from significant experience gaps in
// the explanation and recommendations.
const minorGapCeilingMonths = 6

// buildExplanation concatenates fixed sentence templates driven by the score
// breakdown, appending AI-derived sentences when augmentation succeeded.
func (o *Orchestrator) buildExplanation(score types.MatchingScore, sig *signal) string {
	breakdown := score.Breakdown
	sentences := []string{}

	totalSkills := len(breakdown.MatchedSkills) + len(breakdown.MissingSkills) + len(breakdown.RelatedSkills)
	if totalSkills > 0 {
		sentences = append(sentences, fmt.Sprintf("The candidate directly matches %d of %d required skills.",
			len(breakdown.MatchedSkills), totalSkills))
	}
	if len(breakdown.RelatedSkills) > 0 {
		sentences = append(sentences, fmt.Sprintf("Related experience partially covers %s.",
			o.nameList(breakdown.RelatedSkills)))
	}
	if len(breakdown.MissingSkills) > 0 {
		sentences = append(sentences, fmt.Sprintf("No direct or related experience was found for %s.",
			o.nameList(breakdown.MissingSkills)))
	}

	minor, significant := splitGaps(breakdown.ExperienceGaps)
	if len(minor) > 0 {
		sentences = append(sentences, fmt.Sprintf("Minor experience gaps of 6 months or less exist for %s.",
			o.nameList(minor)))
	}
	if len(significant) > 0 {
		sentences = append(sentences, fmt.Sprintf("Experience gaps exceeding 6 months exist for %s.",
			o.nameList(significant)))
	}

	if len(breakdown.PotentialIndicators) > 0 {
		sentences = append(sentences, "Positive signals: "+strings.Join(breakdown.PotentialIndicators, "; ")+".")
	}
	if len(breakdown.RiskFactors) > 0 {
		sentences = append(sentences, "Risk factors: "+strings.Join(breakdown.RiskFactors, "; ")+".")
	}

	sentences = append(sentences, o.aiSentences(sig)...)
	return strings.Join(sentences, " ")
}

// aiSentences renders the augmentation signal, or nothing when the result is
// fully deterministic.
func (o *Orchestrator) aiSentences(sig *signal) []string {
	if sig.empty() {
		return nil
	}

	sentences := []string{}
	if best := sig.bestTransfer(); best != nil {
		sentences = append(sentences, fmt.Sprintf("Strongest skill transfer path: %s to %s (score %.2f).",
			o.resolver.Normalize(best.FromSkill), o.resolver.Normalize(best.ToSkill), best.Score))
	}
	if sig.culturalFit != nil {
		sentences = append(sentences, fmt.Sprintf("Estimated cultural fit: %d%%.",
			int(sig.culturalFit.Score*100)))
	}
	if months := sig.avgLearningMonths(); months > 0 {
		sentences = append(sentences, fmt.Sprintf("Missing skills look learnable in roughly %d months on average.", months))
	}
	return sentences
}

// splitGaps buckets gap skill ids at the minor-gap ceiling.
func splitGaps(gaps []types.ExperienceGap) (minor, significant []string) {
	for _, gap := range gaps {
		if gap.Gap > minorGapCeilingMonths {
			significant = append(significant, gap.SkillID)
		} else {
			minor = append(minor, gap.SkillID)
		}
	}
	return minor, significant
}

// nameList renders skill ids as a comma-separated list of canonical names.
func (o *Orchestrator) nameList(skillIDs []string) string {
	names := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		names = append(names, o.resolver.Normalize(id))
	}
	return strings.Join(names, ", ")
}
