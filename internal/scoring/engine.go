// Package scoring computes the deterministic multi-factor match score between
// a candidate and a job, plus the explainability breakdown behind it. The
// engine is pure, synchronous computation over its inputs and is safe for
// concurrent use.
package scoring

import (
	"math"

	"github.com/jonathan/talent-match/internal/registry"
	"github.com/jonathan/talent-match/internal/resolver"
	"github.com/jonathan/talent-match/internal/types"
)

// Factor weights for the overall score. Must sum to 1.0.
const (
	skillMatchWeight   = 0.40
	experienceWeight   = 0.30
	transferableWeight = 0.20
	potentialWeight    = 0.10
)

// experienceCeilingMonths normalizes experience durations: two years of
// related experience earns the full duration credit.
const experienceCeilingMonths = 24.0

// Engine scores candidates against jobs. Construct once and share; it holds
// only immutable registry data.
type Engine struct {
	resolver *resolver.Resolver
	registry *registry.Registry
}

// NewEngine creates a scoring engine over a resolver and its registry.
func NewEngine(res *resolver.Resolver, reg *registry.Registry) *Engine {
	return &Engine{resolver: res, registry: reg}
}

// Score computes all four sub-scores, the overall weighted score, and the
// breakdown for one candidate/job pair. A job with zero requirements yields
// zero skill, experience, and transferable sub-scores without error; the
// potential sub-score depends on the candidate alone.
func (e *Engine) Score(candidate *types.Candidate, job *types.Job) types.MatchingScore {
	skillMatch := e.skillMatchScore(candidate, job)
	experience := e.experienceScore(candidate, job)
	transferable := e.transferableScore(candidate, job)
	learningFactor := e.learningIndicatorFactor(candidate)
	potential := e.potentialScore(candidate, learningFactor)

	// Combine at full precision; round only for presentation.
	overall := skillMatchWeight*skillMatch +
		experienceWeight*experience +
		transferableWeight*transferable +
		potentialWeight*potential

	return types.MatchingScore{
		OverallScore:            round2(overall),
		SkillMatchScore:         round2(skillMatch),
		ExperienceScore:         round2(experience),
		TransferableSkillsScore: round2(transferable),
		PotentialScore:          round2(potential),
		Breakdown:               e.buildBreakdown(candidate, job, learningFactor),
	}
}

// relatedExperiences returns the candidate experiences whose skill is graph-
// related to the given requirement skill. The requirement skill itself never
// counts as related to itself.
func (e *Engine) relatedExperiences(candidate *types.Candidate, skillID string) []types.Experience {
	related := make([]types.Experience, 0)
	for _, exp := range candidate.Experience {
		if exp.SkillID == skillID {
			continue
		}
		if e.resolver.AreRelated(skillID, exp.SkillID) {
			related = append(related, exp)
		}
	}
	return related
}

// durationCredit normalizes a duration in months against the experience
// ceiling, returning a value in [0,1].
func durationCredit(months int) float64 {
	credit := float64(months) / experienceCeilingMonths
	if credit > 1.0 {
		credit = 1.0
	}
	if credit < 0 {
		credit = 0
	}
	return credit
}

// clamp01 bounds a score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// round2 rounds to two decimal places for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
