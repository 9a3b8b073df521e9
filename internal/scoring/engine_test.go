package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/registry"
	"github.com/jonathan/talent-match/internal/resolver"
	"github.com/jonathan/talent-match/internal/types"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	reg := registry.Default()
	return NewEngine(resolver.New(reg), reg)
}

func TestScore_NoRequirements(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{ID: "c1", Name: "Test", Skills: []string{"go"}}
	job := &types.Job{ID: "j1", Title: "Anything"}

	score := e.Score(candidate, job)

	assert.Zero(t, score.SkillMatchScore)
	assert.Zero(t, score.ExperienceScore)
	assert.Zero(t, score.TransferableSkillsScore)
	assert.Empty(t, score.Breakdown.MatchedSkills)
	assert.Empty(t, score.Breakdown.MissingSkills)
}

func TestScore_AllScoresInUnitRange(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID:     "c1",
		Name:   "Test",
		Skills: []string{"react", "javascript", "typescript", "graphql", "git", "ci-cd"},
		Experience: []types.Experience{
			{SkillID: "react", DurationMonths: 60, ComplexityLevel: 4, HasLeadershipRole: true},
			{SkillID: "javascript", DurationMonths: 84, ComplexityLevel: 4},
		},
		Education: []types.Education{
			{Degree: "Bachelor of Science", Field: "Computer Science", GraduationYear: 2016},
		},
	}
	job := &types.Job{
		ID:    "j1",
		Title: "Frontend",
		Requirements: []types.JobRequirement{
			{SkillID: "react", MinDurationMonths: 24, RequiredLevel: 4, IsRequired: true},
			{SkillID: "typescript", MinDurationMonths: 12, RequiredLevel: 3, IsRequired: true},
			{SkillID: "graphql", MinDurationMonths: 6, RequiredLevel: 2},
		},
	}

	score := e.Score(candidate, job)

	for name, v := range map[string]float64{
		"overall":      score.OverallScore,
		"skill":        score.SkillMatchScore,
		"experience":   score.ExperienceScore,
		"transferable": score.TransferableSkillsScore,
		"potential":    score.PotentialScore,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}

func TestScore_OverallIsWeightedCombination(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID:     "c1",
		Name:   "Test",
		Skills: []string{"go", "docker"},
		Experience: []types.Experience{
			{SkillID: "go", DurationMonths: 48, ComplexityLevel: 4},
			{SkillID: "docker", DurationMonths: 36, ComplexityLevel: 3},
		},
	}
	job := &types.Job{
		ID:    "j1",
		Title: "Platform",
		Requirements: []types.JobRequirement{
			{SkillID: "go", MinDurationMonths: 36, RequiredLevel: 4, IsRequired: true},
			{SkillID: "kubernetes", MinDurationMonths: 24, RequiredLevel: 3, IsRequired: true},
		},
	}

	score := e.Score(candidate, job)

	reconstructed := 0.40*score.SkillMatchScore +
		0.30*score.ExperienceScore +
		0.20*score.TransferableSkillsScore +
		0.10*score.PotentialScore
	assert.InDelta(t, reconstructed, score.OverallScore, 0.02)
}

func TestScore_Deterministic(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID:     "c1",
		Name:   "Test",
		Skills: []string{"javascript"},
		Experience: []types.Experience{
			{SkillID: "javascript", DurationMonths: 30, ComplexityLevel: 3},
		},
	}
	job := &types.Job{
		ID:    "j1",
		Title: "Frontend",
		Requirements: []types.JobRequirement{
			{SkillID: "react", MinDurationMonths: 12, RequiredLevel: 3, IsRequired: true},
			{SkillID: "typescript", MinDurationMonths: 6, RequiredLevel: 2},
		},
	}

	first := e.Score(candidate, job)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Score(candidate, job))
	}
}

func TestSkillMatchScore_AllRequirementsHeld(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{ID: "c1", Skills: []string{"go", "docker"}}
	job := &types.Job{
		ID: "j1",
		Requirements: []types.JobRequirement{
			{SkillID: "go", IsRequired: true},
			{SkillID: "docker"},
		},
	}

	// No experience records, so no related bonus: exactly full credit.
	assert.InDelta(t, 1.0, e.skillMatchScore(candidate, job), 1e-9)
}

func TestSkillMatchScore_MissingWithRelatedExperience(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID:     "c1",
		Skills: []string{"javascript"},
		Experience: []types.Experience{
			{SkillID: "javascript", DurationMonths: 24, ComplexityLevel: 3},
		},
	}
	job := &types.Job{
		ID: "j1",
		Requirements: []types.JobRequirement{
			{SkillID: "react", IsRequired: true},
		},
	}

	// Related bonus is 1.0 (24 months at the ceiling), miss credit halves it:
	// (2 * 1.0 * 0.5) / 2 = 0.5.
	assert.InDelta(t, 0.5, e.skillMatchScore(candidate, job), 1e-9)
}

func TestSkillMatchScore_RequiredWeighsDouble(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{ID: "c1", Skills: []string{"go"}}

	heldRequired := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "go", IsRequired: true},
		{SkillID: "redis"},
	}}
	heldPreferred := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "go"},
		{SkillID: "redis", IsRequired: true},
	}}

	// Holding the required skill (weight 2 of 3) beats holding the preferred
	// one (weight 1 of 3).
	assert.Greater(t, e.skillMatchScore(candidate, heldRequired), e.skillMatchScore(candidate, heldPreferred))
}

func TestExperienceScore_FullCredit(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID:     "c1",
		Skills: []string{"go"},
		Experience: []types.Experience{
			{SkillID: "go", DurationMonths: 24, ComplexityLevel: 4, HasLeadershipRole: true},
		},
	}
	job := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "go", MinDurationMonths: 12, RequiredLevel: 4, IsRequired: true},
	}}

	// duration 1.0, complexity 0.8, leadership 1.0, level alignment 1.0.
	assert.InDelta(t, 0.95, e.experienceScore(candidate, job), 1e-9)
}

func TestExperienceScore_NoRecordGetsResidualCredit(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{ID: "c1", Skills: []string{"go"}}
	job := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "go", MinDurationMonths: 12, RequiredLevel: 3, IsRequired: true},
	}}

	assert.InDelta(t, 0.1, e.experienceScore(candidate, job), 1e-9)
}

func TestExperienceScore_ZeroMinDurationIsFullDurationCredit(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID: "c1",
		Experience: []types.Experience{
			{SkillID: "go", DurationMonths: 1, ComplexityLevel: 5, HasLeadershipRole: true},
		},
	}
	job := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "go", MinDurationMonths: 0, RequiredLevel: 5, IsRequired: true},
	}}

	// duration 1.0 (no minimum), complexity 1.0, leadership 1.0, alignment 1.0.
	assert.InDelta(t, 1.0, e.experienceScore(candidate, job), 1e-9)
}

func TestTransferableScore_AllRequirementsHeld(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID:     "c1",
		Skills: []string{"go", "docker"},
		Experience: []types.Experience{
			{SkillID: "go", DurationMonths: 48, ComplexityLevel: 4},
		},
	}
	job := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "go", IsRequired: true},
		{SkillID: "docker"},
	}}

	// Held requirements are excluded, leaving nothing to average.
	assert.Zero(t, e.transferableScore(candidate, job))
}

func TestTransferableScore_RelatedCoverage(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{
		ID:     "c1",
		Skills: []string{"javascript"},
		Experience: []types.Experience{
			{SkillID: "javascript", DurationMonths: 24, ComplexityLevel: 3},
		},
	}
	job := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "react", IsRequired: true},
	}}

	// react difficulty 3, javascript difficulty 2: (1 - 1/5) * 1.0 = 0.8.
	assert.InDelta(t, 0.8, e.transferableScore(candidate, job), 1e-9)
}

func TestTransferableScore_NoRelatedExperience(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{ID: "c1", Skills: []string{"python"}}
	job := &types.Job{Requirements: []types.JobRequirement{
		{SkillID: "react", IsRequired: true},
	}}

	assert.Zero(t, e.transferableScore(candidate, job))
}

func TestPotentialScore_StrongLearningProfile(t *testing.T) {
	e := testEngine(t)
	currentYear := time.Now().Year()
	candidate := &types.Candidate{
		ID:     "c1",
		Skills: []string{"go", "docker", "kubernetes", "terraform", "aws", "postgresql"},
		Experience: []types.Experience{
			{SkillID: "docker", DurationMonths: 12, ComplexityLevel: 2, HasLeadershipRole: true},
			{SkillID: "go", DurationMonths: 24, ComplexityLevel: 4},
		},
		Education: []types.Education{
			{Degree: "Master of Science", Field: "Computer Science", GraduationYear: currentYear - 1},
		},
	}

	learningFactor := e.learningIndicatorFactor(candidate)
	require.InDelta(t, 1.0, learningFactor, 1e-9)

	// education 2/3, learning 1.0, growth 1.0 (complexity rises with duration):
	// 0.3*(2/3) + 0.4*1.0 + 0.3*1.0 = 0.9.
	assert.InDelta(t, 0.9, e.potentialScore(candidate, learningFactor), 1e-9)
}

func TestPotentialScore_NoSignals(t *testing.T) {
	e := testEngine(t)
	candidate := &types.Candidate{ID: "c1", Skills: []string{"go"}}

	learningFactor := e.learningIndicatorFactor(candidate)
	require.Zero(t, learningFactor)

	// education default 0.3, learning 0, growth default 0.5:
	// 0.3*0.3 + 0.3*0.5 = 0.24.
	assert.InDelta(t, 0.24, e.potentialScore(candidate, learningFactor), 1e-9)
}

func TestDegreeLevel_Mapping(t *testing.T) {
	assert.InDelta(t, 3.0, degreeLevel("PhD in Computer Science"), 1e-9)
	assert.InDelta(t, 2.0, degreeLevel("Master of Science"), 1e-9)
	assert.InDelta(t, 2.0, degreeLevel("MBA"), 1e-9)
	assert.InDelta(t, 1.0, degreeLevel("Bachelor of Engineering"), 1e-9)
	assert.InDelta(t, 0.5, degreeLevel("Associate Degree"), 1e-9)
	assert.InDelta(t, 0.25, degreeLevel("AWS Certification"), 1e-9)
	assert.InDelta(t, 0.5, degreeLevel("Something Unrecognized"), 1e-9)
}

func TestGrowthTrajectoryFactor_SingleRecord(t *testing.T) {
	factor := growthTrajectoryFactor([]types.Experience{
		{SkillID: "go", DurationMonths: 12, ComplexityLevel: 3},
	})

	assert.InDelta(t, 0.5, factor, 1e-9)
}

func TestGrowthTrajectoryFactor_StrictlyIncreasing(t *testing.T) {
	factor := growthTrajectoryFactor([]types.Experience{
		{SkillID: "a", DurationMonths: 6, ComplexityLevel: 1},
		{SkillID: "b", DurationMonths: 12, ComplexityLevel: 2},
		{SkillID: "c", DurationMonths: 24, ComplexityLevel: 4},
	})

	assert.InDelta(t, 1.0, factor, 1e-9)
}

func TestGrowthTrajectoryFactor_Flat(t *testing.T) {
	factor := growthTrajectoryFactor([]types.Experience{
		{SkillID: "a", DurationMonths: 6, ComplexityLevel: 3},
		{SkillID: "b", DurationMonths: 12, ComplexityLevel: 3},
	})

	assert.Zero(t, factor)
}
