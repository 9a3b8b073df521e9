package augment

import (
	"context"

	"github.com/jonathan/talent-match/internal/registry"
	"github.com/jonathan/talent-match/internal/resolver"
)

// Heuristic defaults used when the registry has no signal for a skill.
const (
	unknownSkillTransferScore = 0.3
	unknownSkillMonths        = 6
	neutralCulturalFit        = 0.5
	baseCredibility           = 0.7
	maxDifficulty             = 5.0
	transferCeilingMonths     = 24.0
)

// HeuristicAnalyzer is the deterministic local fallback: every assessment is
// derived from registry data only, so results are reproducible and available
// with no external backend. It never returns an error.
type HeuristicAnalyzer struct {
	registry *registry.Registry
	resolver *resolver.Resolver
}

// NewHeuristicAnalyzer builds the fallback analyzer over the skill graph.
func NewHeuristicAnalyzer(reg *registry.Registry, res *resolver.Resolver) *HeuristicAnalyzer {
	return &HeuristicAnalyzer{registry: reg, resolver: res}
}

// AnalyzeSkillTransferability scores a skill pair from graph adjacency,
// difficulty distance, and experience duration.
func (h *HeuristicAnalyzer) AnalyzeSkillTransferability(_ context.Context, fromSkill, toSkill string, months int) (TransferabilityAnalysis, error) {
	analysis := TransferabilityAnalysis{
		FromSkill:       fromSkill,
		ToSkill:         toSkill,
		Score:           unknownSkillTransferScore,
		EstimatedMonths: unknownSkillMonths,
	}

	from, okFrom := h.resolver.Skill(fromSkill)
	to, okTo := h.resolver.Skill(toSkill)
	if !okFrom || !okTo {
		return analysis, nil
	}

	delta := float64(to.DifficultyLevel - from.DifficultyLevel)
	if delta < 0 {
		delta = -delta
	}
	duration := float64(months) / transferCeilingMonths
	if duration > 1 {
		duration = 1
	}

	score := (1.0 - delta/maxDifficulty) * duration
	if h.resolver.AreRelated(from.ID, to.ID) {
		score += 0.2 * h.relationshipWeight(from.ID, to.ID)
		analysis.TransferPath = []string{from.CanonicalName, to.CanonicalName}
	}
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	analysis.Score = score
	analysis.EstimatedMonths = estimateMonths(to.TimeToProficiencyMonths, score)
	return analysis, nil
}

// AssessLearningPotential derives a potential score from the target skill's
// difficulty and time to proficiency.
func (h *HeuristicAnalyzer) AssessLearningPotential(_ context.Context, _ string, skill string) (LearningAssessment, error) {
	assessment := LearningAssessment{
		Skill:           skill,
		Potential:       0.5,
		EstimatedMonths: unknownSkillMonths,
	}

	s, ok := h.resolver.Skill(skill)
	if !ok {
		return assessment, nil
	}

	potential := 1.0 - float64(s.DifficultyLevel)/maxDifficulty
	if potential < 0.2 {
		potential = 0.2
	}
	if potential > 0.9 {
		potential = 0.9
	}

	assessment.Skill = s.CanonicalName
	assessment.Potential = potential
	assessment.EstimatedMonths = s.TimeToProficiencyMonths
	for _, related := range h.resolver.RelatedSkills(s.ID) {
		assessment.Recommendations = append(assessment.Recommendations,
			"Leverage existing "+related.CanonicalName+" knowledge when learning "+s.CanonicalName)
		break
	}
	return assessment, nil
}

// AssessCulturalFit has no local signal, so the heuristic returns a neutral
// score that neither boosts nor penalizes confidence.
func (h *HeuristicAnalyzer) AssessCulturalFit(_ context.Context, _, _ string) (CulturalFitAssessment, error) {
	return CulturalFitAssessment{Score: neutralCulturalFit}, nil
}

// ValidateExperience checks a claim for internal consistency against the
// registry's time-to-proficiency data.
func (h *HeuristicAnalyzer) ValidateExperience(_ context.Context, claim ExperienceClaim) (ExperienceValidation, error) {
	validation := ExperienceValidation{
		SkillID:     claim.SkillID,
		Credibility: baseCredibility,
	}

	if claim.ProjectDescription == "" {
		validation.Credibility -= 0.1
		validation.Flags = append(validation.Flags, "No project description provided")
	}

	if s, ok := h.resolver.Skill(claim.SkillID); ok {
		if claim.ComplexityLevel >= 4 && claim.DurationMonths < s.TimeToProficiencyMonths {
			validation.Credibility -= 0.2
			validation.Flags = append(validation.Flags, "High complexity claimed with short duration")
		}
	}

	if validation.Credibility < 0 {
		validation.Credibility = 0
	}
	return validation, nil
}

// relationshipWeight returns the edge strength between two skills, defaulting
// to full weight when related only via the RelatedSkills field.
func (h *HeuristicAnalyzer) relationshipWeight(a, b string) float64 {
	if strength := h.registry.RelationshipStrength(a, b); strength > 0 {
		return strength
	}
	return 1.0
}

// estimateMonths scales a skill's time to proficiency down as transferability
// rises.
func estimateMonths(proficiencyMonths int, score float64) int {
	if proficiencyMonths <= 0 {
		return unknownSkillMonths
	}
	months := int(float64(proficiencyMonths) * (1.0 - 0.5*score))
	if months < 1 {
		months = 1
	}
	return months
}
