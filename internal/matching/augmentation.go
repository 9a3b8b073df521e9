package matching

import (
	"context"
	"strings"

	"github.com/jonathan/talent-match/internal/augment"
	"github.com/jonathan/talent-match/internal/types"
)

// Caps on external calls per match request. They exist purely to bound the
// number of outbound analysis calls, not to limit the local computation.
const (
	maxTransferAnalyses      = 3
	maxLearningAssessments   = 2
	maxExperienceValidations = 3
)

// signal aggregates whatever augmentation analysis succeeded for one match.
// A nil or empty signal means the result is fully deterministic.
type signal struct {
	transfers   []augment.TransferabilityAnalysis
	learning    []augment.LearningAssessment
	culturalFit *augment.CulturalFitAssessment
	validations []augment.ExperienceValidation
}

func (s *signal) empty() bool {
	return s == nil ||
		(len(s.transfers) == 0 && len(s.learning) == 0 && s.culturalFit == nil && len(s.validations) == 0)
}

// collectSignal runs the capped augmentation calls. Individual failures are
// dropped silently: a degraded match returns a complete, lower-confidence
// result with no visible error.
func (o *Orchestrator) collectSignal(ctx context.Context, candidate *types.Candidate, job *types.Job, breakdown types.ScoreBreakdown) *signal {
	if o.analyzer == nil {
		return nil
	}

	sig := &signal{}

	for i, missing := range breakdown.MissingSkills {
		if i >= maxTransferAnalyses {
			break
		}
		source, months := o.bestRelatedExperience(candidate, missing)
		if source == "" {
			continue
		}
		analysis, err := o.analyzer.AnalyzeSkillTransferability(ctx, source, missing, months)
		if err != nil {
			continue
		}
		sig.transfers = append(sig.transfers, analysis)
	}

	for i, missing := range breakdown.MissingSkills {
		if i >= maxLearningAssessments {
			break
		}
		assessment, err := o.analyzer.AssessLearningPotential(ctx, candidate.Summary, o.resolver.Normalize(missing))
		if err != nil {
			continue
		}
		sig.learning = append(sig.learning, assessment)
	}

	companyProfile := job.Company
	if len(job.Responsibilities) > 0 {
		companyProfile += ": " + strings.Join(job.Responsibilities, "; ")
	}
	if fit, err := o.analyzer.AssessCulturalFit(ctx, candidate.Summary, companyProfile); err == nil {
		sig.culturalFit = &fit
	}

	for i, exp := range candidate.Experience {
		if i >= maxExperienceValidations {
			break
		}
		validation, err := o.analyzer.ValidateExperience(ctx, augment.ExperienceClaim{
			SkillID:            exp.SkillID,
			DurationMonths:     exp.DurationMonths,
			ComplexityLevel:    exp.ComplexityLevel,
			ProjectDescription: exp.ProjectDescription,
		})
		if err != nil {
			continue
		}
		sig.validations = append(sig.validations, validation)
	}

	return sig
}

// bestRelatedExperience picks the candidate experience most useful as a
// transfer source for a missing skill: the longest graph-related record,
// falling back to the longest record overall.
func (o *Orchestrator) bestRelatedExperience(candidate *types.Candidate, skillID string) (string, int) {
	bestSkill := ""
	bestMonths := 0
	for _, exp := range candidate.Experience {
		if !o.resolver.AreRelated(skillID, exp.SkillID) {
			continue
		}
		if exp.DurationMonths > bestMonths {
			bestSkill = exp.SkillID
			bestMonths = exp.DurationMonths
		}
	}
	if bestSkill != "" {
		return bestSkill, bestMonths
	}

	for _, exp := range candidate.Experience {
		if exp.DurationMonths > bestMonths {
			bestSkill = exp.SkillID
			bestMonths = exp.DurationMonths
		}
	}
	return bestSkill, bestMonths
}

// bestTransfer returns the highest-scoring transferability analysis, or nil.
func (s *signal) bestTransfer() *augment.TransferabilityAnalysis {
	var best *augment.TransferabilityAnalysis
	for i := range s.transfers {
		if best == nil || s.transfers[i].Score > best.Score {
			best = &s.transfers[i]
		}
	}
	return best
}

// fastestLearning returns the assessment with the shortest estimate, or nil.
func (s *signal) fastestLearning() *augment.LearningAssessment {
	var fastest *augment.LearningAssessment
	for i := range s.learning {
		if fastest == nil || s.learning[i].EstimatedMonths < fastest.EstimatedMonths {
			fastest = &s.learning[i]
		}
	}
	return fastest
}

// avgTransferability is the mean transfer score, 0 when none were analyzed.
func (s *signal) avgTransferability() float64 {
	if len(s.transfers) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range s.transfers {
		total += t.Score
	}
	return total / float64(len(s.transfers))
}

// avgValidationConfidence is the mean claim credibility, 0 when none ran.
func (s *signal) avgValidationConfidence() float64 {
	if len(s.validations) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range s.validations {
		total += v.Credibility
	}
	return total / float64(len(s.validations))
}

// avgLearningMonths is the mean estimated learning time, 0 when none ran.
func (s *signal) avgLearningMonths() int {
	if len(s.learning) == 0 {
		return 0
	}
	total := 0
	for _, l := range s.learning {
		total += l.EstimatedMonths
	}
	return total / len(s.learning)
}
