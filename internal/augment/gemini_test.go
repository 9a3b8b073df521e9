package augment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/llm"
)

// fakeClient scripts GenerateJSON responses and counts calls.
type fakeClient struct {
	response string
	failures int // number of initial calls that error
	calls    int
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("transient failure")
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func fastAnalyzer(client llm.Client) *GeminiAnalyzer {
	g := NewGeminiAnalyzer(client)
	g.backoff = time.Millisecond
	g.minInterval = 0
	return g
}

func TestGeminiTransferability_ParsesResponse(t *testing.T) {
	client := &fakeClient{response: `{"score": 0.75, "transfer_path": ["JavaScript", "TypeScript"], "estimated_months": 3, "reasoning": "close syntax"}`}
	g := fastAnalyzer(client)

	analysis, err := g.AnalyzeSkillTransferability(context.Background(), "javascript", "typescript", 24)

	require.NoError(t, err)
	assert.InDelta(t, 0.75, analysis.Score, 1e-9)
	assert.Equal(t, []string{"JavaScript", "TypeScript"}, analysis.TransferPath)
	assert.Equal(t, 3, analysis.EstimatedMonths)
	assert.Equal(t, "javascript", analysis.FromSkill)
	assert.Equal(t, "typescript", analysis.ToSkill)
}

func TestGeminiTransferability_ClampsScore(t *testing.T) {
	client := &fakeClient{response: `{"score": 7.5}`}
	g := fastAnalyzer(client)

	analysis, err := g.AnalyzeSkillTransferability(context.Background(), "a", "b", 12)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, analysis.Score, 1e-9)
}

func TestGeminiGenerateJSON_RetriesThenSucceeds(t *testing.T) {
	client := &fakeClient{response: `{"score": 0.5}`, failures: 2}
	g := fastAnalyzer(client)

	_, err := g.AnalyzeSkillTransferability(context.Background(), "a", "b", 12)

	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
}

func TestGeminiGenerateJSON_ExhaustsRetries(t *testing.T) {
	client := &fakeClient{failures: 100}
	g := fastAnalyzer(client)

	_, err := g.AnalyzeSkillTransferability(context.Background(), "a", "b", 12)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, client.calls)
}

func TestGeminiGenerateJSON_CachesByPrompt(t *testing.T) {
	client := &fakeClient{response: `{"score": 0.5}`}
	g := fastAnalyzer(client)

	_, err := g.AnalyzeSkillTransferability(context.Background(), "a", "b", 12)
	require.NoError(t, err)
	_, err = g.AnalyzeSkillTransferability(context.Background(), "a", "b", 12)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "identical prompt must be served from cache")

	_, err = g.AnalyzeSkillTransferability(context.Background(), "a", "c", 12)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls, "different prompt must reach the client")
}

func TestGeminiValidateExperience_ParsesFlags(t *testing.T) {
	client := &fakeClient{response: `{"credibility": 0.4, "flags": ["duration inconsistent with scope"]}`}
	g := fastAnalyzer(client)

	validation, err := g.ValidateExperience(context.Background(), ExperienceClaim{
		SkillID:        "go",
		DurationMonths: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "go", validation.SkillID)
	assert.InDelta(t, 0.4, validation.Credibility, 1e-9)
	assert.Equal(t, []string{"duration inconsistent with scope"}, validation.Flags)
}

func TestGeminiCulturalFit_InvalidJSON(t *testing.T) {
	client := &fakeClient{response: `not json at all`}
	g := fastAnalyzer(client)

	_, err := g.AssessCulturalFit(context.Background(), "summary", "company")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
