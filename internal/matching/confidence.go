package matching

import "github.com/jonathan/talent-match/internal/types"

// Confidence model: a base value adjusted by data completeness, optionally
// nudged by corroborating AI signal, always clamped to [minConfidence, 1].
const (
	baseConfidence = 0.8
	minConfidence  = 0.3

	anyMatchBonus   = 0.1
	noMissingBonus  = 0.05
	noGapsBonus     = 0.05
	largeGapPenalty = 0.05
	mostlyMissing   = 0.1

	transferSignalWeight   = 0.1
	culturalSignalWeight   = 0.05
	validationSignalWeight = 0.05

	confidenceGapMonths = 12
)

// computeConfidence summarizes how much the deterministic score should be
// trusted.
func computeConfidence(breakdown types.ScoreBreakdown, sig *signal) float64 {
	confidence := baseConfidence

	if len(breakdown.MatchedSkills) > 0 {
		confidence += anyMatchBonus
	}
	if len(breakdown.MissingSkills) == 0 {
		confidence += noMissingBonus
	}
	if len(breakdown.ExperienceGaps) == 0 {
		confidence += noGapsBonus
	}
	for _, gap := range breakdown.ExperienceGaps {
		if gap.Gap > confidenceGapMonths {
			confidence -= largeGapPenalty
		}
	}
	if len(breakdown.MissingSkills) > len(breakdown.MatchedSkills) {
		confidence -= mostlyMissing
	}

	if !sig.empty() {
		confidence += sig.avgTransferability() * transferSignalWeight
		if sig.culturalFit != nil {
			confidence += sig.culturalFit.Score * culturalSignalWeight
		}
		confidence += sig.avgValidationConfidence() * validationSignalWeight
	}

	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
