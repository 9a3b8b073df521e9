package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsFromText_EmptyText(t *testing.T) {
	r := testResolver(t)

	result := r.ExtractSkillsFromText("   ")

	assert.Empty(t, result.Skills)
	assert.Empty(t, result.MatchedTerms)
	assert.Empty(t, result.UnmatchedTerms)
	assert.Zero(t, result.Confidence)
}

func TestExtractSkillsFromText_FindsCanonicalMentions(t *testing.T) {
	r := testResolver(t)

	result := r.ExtractSkillsFromText("We need React and TypeScript experience, Docker is a plus.")

	assert.Contains(t, result.Skills, "React")
	assert.Contains(t, result.Skills, "TypeScript")
	assert.Contains(t, result.Skills, "Docker")
}

func TestExtractSkillsFromText_FirstOccurrenceOrder(t *testing.T) {
	r := testResolver(t)

	result := r.ExtractSkillsFromText("Kubernetes before Docker before Terraform")

	require.GreaterOrEqual(t, len(result.Skills), 3)
	k8s := indexOf(result.Skills, "Kubernetes")
	docker := indexOf(result.Skills, "Docker")
	terraform := indexOf(result.Skills, "Terraform")
	require.GreaterOrEqual(t, k8s, 0)
	require.GreaterOrEqual(t, docker, 0)
	require.GreaterOrEqual(t, terraform, 0)
	assert.Less(t, k8s, docker)
	assert.Less(t, docker, terraform)
}

func TestExtractSkillsFromText_DedupesRepeatedMentions(t *testing.T) {
	r := testResolver(t)

	result := r.ExtractSkillsFromText("Redis, redis, and more Redis")

	count := 0
	for _, s := range result.Skills {
		if s == "Redis" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkillsFromText_UnmatchedTermsCollected(t *testing.T) {
	r := testResolver(t)

	result := r.ExtractSkillsFromText("fluent zorbflux experience")

	assert.Contains(t, result.UnmatchedTerms, "zorbflux")
}

func TestExtractSkillsFromText_ConfidenceRatio(t *testing.T) {
	r := testResolver(t)

	result := r.ExtractSkillsFromText("some skills here")

	total := len(result.MatchedTerms) + len(result.UnmatchedTerms)
	require.Positive(t, total)
	expected := float64(len(result.MatchedTerms)) / float64(total)
	assert.InDelta(t, expected, result.Confidence, 1e-9)
}

func TestExtractSkillsFromText_Deterministic(t *testing.T) {
	r := testResolver(t)
	text := "Senior engineer with Go, Kubernetes, PostgreSQL and some Terraform exposure"

	first := r.ExtractSkillsFromText(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.ExtractSkillsFromText(text))
	}
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
