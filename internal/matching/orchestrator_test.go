package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/augment"
	"github.com/jonathan/talent-match/internal/registry"
	"github.com/jonathan/talent-match/internal/resolver"
	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/store"
	"github.com/jonathan/talent-match/internal/types"
)

func fixtureJobs() []types.Job {
	return []types.Job{
		{
			ID:      "job-frontend",
			Title:   "Frontend Engineer",
			Company: "Acme",
			Requirements: []types.JobRequirement{
				{SkillID: "react", MinDurationMonths: 24, RequiredLevel: 4, IsRequired: true},
				{SkillID: "typescript", MinDurationMonths: 12, RequiredLevel: 3, IsRequired: true},
				{SkillID: "graphql", MinDurationMonths: 6, RequiredLevel: 2},
			},
		},
		{
			ID:      "job-backend",
			Title:   "Backend Engineer",
			Company: "Acme",
			Requirements: []types.JobRequirement{
				{SkillID: "go", MinDurationMonths: 36, RequiredLevel: 4, IsRequired: true},
				{SkillID: "postgresql", MinDurationMonths: 24, RequiredLevel: 3, IsRequired: true},
			},
		},
	}
}

func fixtureCandidates() []types.Candidate {
	return []types.Candidate{
		{
			ID:     "cand-frontend",
			Name:   "Frontend Person",
			Skills: []string{"react", "typescript", "javascript", "graphql"},
			Experience: []types.Experience{
				{SkillID: "react", DurationMonths: 48, ComplexityLevel: 4, HasLeadershipRole: true},
				{SkillID: "javascript", DurationMonths: 60, ComplexityLevel: 4},
			},
			Education: []types.Education{
				{Degree: "Bachelor of Science", Field: "Computer Science", GraduationYear: 2017},
			},
			Summary: "Frontend specialist.",
		},
		{
			ID:     "cand-data",
			Name:   "Data Person",
			Skills: []string{"python", "sql"},
			Experience: []types.Experience{
				{SkillID: "python", DurationMonths: 30, ComplexityLevel: 3},
			},
			Summary: "Data analyst.",
		},
	}
}

func testOrchestrator(t *testing.T, analyzer augment.Analyzer) *Orchestrator {
	t.Helper()
	reg := registry.Default()
	res := resolver.New(reg)
	provider := store.NewMemoryStore(fixtureJobs(), fixtureCandidates())
	return NewOrchestrator(provider, scoring.NewEngine(res, reg), res, analyzer)
}

// failingAnalyzer errors on every call, simulating a dead AI backend.
type failingAnalyzer struct{}

func (failingAnalyzer) AnalyzeSkillTransferability(context.Context, string, string, int) (augment.TransferabilityAnalysis, error) {
	return augment.TransferabilityAnalysis{}, errors.New("backend down")
}

func (failingAnalyzer) AssessLearningPotential(context.Context, string, string) (augment.LearningAssessment, error) {
	return augment.LearningAssessment{}, errors.New("backend down")
}

func (failingAnalyzer) AssessCulturalFit(context.Context, string, string) (augment.CulturalFitAssessment, error) {
	return augment.CulturalFitAssessment{}, errors.New("backend down")
}

func (failingAnalyzer) ValidateExperience(context.Context, augment.ExperienceClaim) (augment.ExperienceValidation, error) {
	return augment.ExperienceValidation{}, errors.New("backend down")
}

// stubAnalyzer returns fixed assessments.
type stubAnalyzer struct{}

func (stubAnalyzer) AnalyzeSkillTransferability(_ context.Context, from, to string, _ int) (augment.TransferabilityAnalysis, error) {
	return augment.TransferabilityAnalysis{
		FromSkill:       from,
		ToSkill:         to,
		Score:           0.8,
		TransferPath:    []string{from, to},
		EstimatedMonths: 3,
	}, nil
}

func (stubAnalyzer) AssessLearningPotential(_ context.Context, _ string, skill string) (augment.LearningAssessment, error) {
	return augment.LearningAssessment{Skill: skill, Potential: 0.7, EstimatedMonths: 4}, nil
}

func (stubAnalyzer) AssessCulturalFit(context.Context, string, string) (augment.CulturalFitAssessment, error) {
	return augment.CulturalFitAssessment{Score: 0.9}, nil
}

func (stubAnalyzer) ValidateExperience(_ context.Context, claim augment.ExperienceClaim) (augment.ExperienceValidation, error) {
	return augment.ExperienceValidation{SkillID: claim.SkillID, Credibility: 0.85}, nil
}

func TestMatch_DeterministicResult(t *testing.T) {
	o := testOrchestrator(t, nil)

	result, err := o.Match(context.Background(), "job-frontend", "cand-frontend")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "cand-frontend", result.Candidate.ID)
	assert.Equal(t, "job-frontend", result.Job.ID)
	assert.NotEmpty(t, result.Explanation)
	assert.GreaterOrEqual(t, result.Confidence, 0.3)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Greater(t, result.Score.OverallScore, 0.5)
}

func TestMatch_Idempotent(t *testing.T) {
	o := testOrchestrator(t, nil)

	first, err := o.Match(context.Background(), "job-frontend", "cand-frontend")
	require.NoError(t, err)
	second, err := o.Match(context.Background(), "job-frontend", "cand-frontend")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMatch_UnknownJob(t *testing.T) {
	o := testOrchestrator(t, nil)

	_, err := o.Match(context.Background(), "job-nope", "cand-frontend")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "job", notFound.Resource)
}

func TestMatch_UnknownCandidate(t *testing.T) {
	o := testOrchestrator(t, nil)

	_, err := o.Match(context.Background(), "job-frontend", "cand-nope")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "candidate", notFound.Resource)
}

func TestMatch_EmptyIDs(t *testing.T) {
	o := testOrchestrator(t, nil)

	_, err := o.Match(context.Background(), "", "cand-frontend")

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestMatch_FailingAnalyzerDegradesToDeterministic(t *testing.T) {
	deterministic := testOrchestrator(t, nil)
	degraded := testOrchestrator(t, failingAnalyzer{})

	base, err := deterministic.Match(context.Background(), "job-backend", "cand-data")
	require.NoError(t, err)
	result, err := degraded.Match(context.Background(), "job-backend", "cand-data")
	require.NoError(t, err)

	// All augmentation calls failed, so the result is exactly the
	// deterministic one: same score, explanation, and confidence.
	assert.Equal(t, base.Score, result.Score)
	assert.Equal(t, base.Explanation, result.Explanation)
	assert.InDelta(t, base.Confidence, result.Confidence, 1e-9)
	assert.NotContains(t, result.Explanation, "transfer path")
	assert.NotContains(t, result.Explanation, "cultural fit")
}

func TestMatch_StubAnalyzerAddsSignal(t *testing.T) {
	deterministic := testOrchestrator(t, nil)
	augmented := testOrchestrator(t, stubAnalyzer{})

	base, err := deterministic.Match(context.Background(), "job-backend", "cand-data")
	require.NoError(t, err)
	result, err := augmented.Match(context.Background(), "job-backend", "cand-data")
	require.NoError(t, err)

	assert.Equal(t, base.Score, result.Score, "augmentation must not change the deterministic score")
	assert.Contains(t, result.Explanation, "cultural fit")
	assert.GreaterOrEqual(t, result.Confidence, base.Confidence)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestComputeConfidence_ClampedToFloor(t *testing.T) {
	breakdown := types.ScoreBreakdown{
		MissingSkills: []string{"a", "b", "c", "d", "e"},
		ExperienceGaps: []types.ExperienceGap{
			{SkillID: "a", Gap: 20},
			{SkillID: "b", Gap: 24},
			{SkillID: "c", Gap: 30},
			{SkillID: "d", Gap: 36},
			{SkillID: "e", Gap: 40},
			{SkillID: "f", Gap: 40},
			{SkillID: "g", Gap: 40},
			{SkillID: "h", Gap: 40},
		},
	}

	confidence := computeConfidence(breakdown, nil)

	assert.InDelta(t, 0.3, confidence, 1e-9)
}

func TestComputeConfidence_StrongMatch(t *testing.T) {
	breakdown := types.ScoreBreakdown{
		MatchedSkills: []string{"go", "postgresql"},
	}

	confidence := computeConfidence(breakdown, nil)

	// 0.8 + 0.1 (matches) + 0.05 (no missing) + 0.05 (no gaps) = 1.0.
	assert.InDelta(t, 1.0, confidence, 1e-9)
}

func TestRankCandidates_SortedByScore(t *testing.T) {
	o := testOrchestrator(t, nil)

	results, err := o.RankCandidates(context.Background(), "job-frontend", 0)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "cand-frontend", results[0].Candidate.ID)
	assert.GreaterOrEqual(t, results[0].Score.OverallScore, results[1].Score.OverallScore)
}

func TestRankCandidates_LimitTruncates(t *testing.T) {
	o := testOrchestrator(t, nil)

	results, err := o.RankCandidates(context.Background(), "job-frontend", 1)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "cand-frontend", results[0].Candidate.ID)
}

func TestRankCandidates_UnknownJob(t *testing.T) {
	o := testOrchestrator(t, nil)

	_, err := o.RankCandidates(context.Background(), "job-nope", 0)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRankCandidates_EmptyJobID(t *testing.T) {
	o := testOrchestrator(t, nil)

	_, err := o.RankCandidates(context.Background(), "", 0)

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestRankJobs_SortedByScore(t *testing.T) {
	o := testOrchestrator(t, nil)

	results, err := o.RankJobs(context.Background(), "cand-frontend", 0)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "job-frontend", results[0].Job.ID)
	assert.GreaterOrEqual(t, results[0].Score.OverallScore, results[1].Score.OverallScore)
}

func TestRankJobs_UnknownCandidate(t *testing.T) {
	o := testOrchestrator(t, nil)

	_, err := o.RankJobs(context.Background(), "cand-nope", 0)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestExplanation_MentionsMissingSkills(t *testing.T) {
	o := testOrchestrator(t, nil)

	result, err := o.Match(context.Background(), "job-backend", "cand-data")

	require.NoError(t, err)
	assert.Contains(t, result.Explanation, "No direct or related experience was found for")
	assert.Contains(t, result.Explanation, "Go")
}

func TestRecommendations_CappedAtFive(t *testing.T) {
	o := testOrchestrator(t, stubAnalyzer{})

	result, err := o.Match(context.Background(), "job-backend", "cand-data")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 5)
}
