package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jonathan/talent-match/internal/llm"
	"github.com/jonathan/talent-match/internal/prompts"
)

const (
	// promptFile is the embedded prompt pack for analysis calls.
	promptFile = "analysis.json"

	defaultMaxAttempts = 3
	defaultBackoff     = 500 * time.Millisecond
	defaultMinInterval = 200 * time.Millisecond
)

// GeminiAnalyzer implements Analyzer against the LLM client. Calls are
// serialized behind a minimum inter-call delay, retried with backoff, and
// cached by prompt content hash.
type GeminiAnalyzer struct {
	client      llm.Client
	cache       *responseCache
	maxAttempts int
	backoff     time.Duration
	minInterval time.Duration

	mu       sync.Mutex
	lastCall time.Time
}

// NewGeminiAnalyzer wraps an LLM client with retry, rate limiting, and
// response caching.
func NewGeminiAnalyzer(client llm.Client) *GeminiAnalyzer {
	return &GeminiAnalyzer{
		client:      client,
		cache:       newResponseCache(),
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		minInterval: defaultMinInterval,
	}
}

// AnalyzeSkillTransferability asks the model how well experience with one
// skill transfers to another.
func (g *GeminiAnalyzer) AnalyzeSkillTransferability(ctx context.Context, fromSkill, toSkill string, months int) (TransferabilityAnalysis, error) {
	prompt, err := buildPrompt("transferability", map[string]string{
		"FromSkill": fromSkill,
		"ToSkill":   toSkill,
		"Months":    strconv.Itoa(months),
	})
	if err != nil {
		return TransferabilityAnalysis{}, err
	}

	raw, err := g.generateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return TransferabilityAnalysis{}, err
	}

	var parsed struct {
		Score           float64  `json:"score"`
		TransferPath    []string `json:"transfer_path"`
		EstimatedMonths int      `json:"estimated_months"`
		Reasoning       string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return TransferabilityAnalysis{}, fmt.Errorf("failed to parse transferability response: %w", err)
	}

	return TransferabilityAnalysis{
		FromSkill:       fromSkill,
		ToSkill:         toSkill,
		Score:           clampUnit(parsed.Score),
		TransferPath:    parsed.TransferPath,
		EstimatedMonths: parsed.EstimatedMonths,
		Reasoning:       parsed.Reasoning,
	}, nil
}

// AssessLearningPotential asks the model how quickly the candidate can learn
// a missing skill.
func (g *GeminiAnalyzer) AssessLearningPotential(ctx context.Context, candidateSummary, skill string) (LearningAssessment, error) {
	prompt, err := buildPrompt("learning_potential", map[string]string{
		"Summary": candidateSummary,
		"Skill":   skill,
	})
	if err != nil {
		return LearningAssessment{}, err
	}

	raw, err := g.generateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return LearningAssessment{}, err
	}

	var parsed struct {
		Potential       float64  `json:"potential"`
		EstimatedMonths int      `json:"estimated_months"`
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return LearningAssessment{}, fmt.Errorf("failed to parse learning potential response: %w", err)
	}

	return LearningAssessment{
		Skill:           skill,
		Potential:       clampUnit(parsed.Potential),
		EstimatedMonths: parsed.EstimatedMonths,
		Recommendations: parsed.Recommendations,
	}, nil
}

// AssessCulturalFit asks the model for a candidate/company alignment score.
func (g *GeminiAnalyzer) AssessCulturalFit(ctx context.Context, candidateSummary, companyProfile string) (CulturalFitAssessment, error) {
	prompt, err := buildPrompt("cultural_fit", map[string]string{
		"Summary": candidateSummary,
		"Company": companyProfile,
	})
	if err != nil {
		return CulturalFitAssessment{}, err
	}

	raw, err := g.generateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return CulturalFitAssessment{}, err
	}

	var parsed CulturalFitAssessment
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return CulturalFitAssessment{}, fmt.Errorf("failed to parse cultural fit response: %w", err)
	}
	parsed.Score = clampUnit(parsed.Score)
	return parsed, nil
}

// ValidateExperience asks the model to assess one experience claim.
func (g *GeminiAnalyzer) ValidateExperience(ctx context.Context, claim ExperienceClaim) (ExperienceValidation, error) {
	prompt, err := buildPrompt("experience_validation", map[string]string{
		"Skill":       claim.SkillID,
		"Months":      strconv.Itoa(claim.DurationMonths),
		"Level":       strconv.Itoa(claim.ComplexityLevel),
		"Description": claim.ProjectDescription,
	})
	if err != nil {
		return ExperienceValidation{}, err
	}

	raw, err := g.generateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return ExperienceValidation{}, err
	}

	var parsed struct {
		Credibility float64  `json:"credibility"`
		Flags       []string `json:"flags"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return ExperienceValidation{}, fmt.Errorf("failed to parse experience validation response: %w", err)
	}

	return ExperienceValidation{
		SkillID:     claim.SkillID,
		Credibility: clampUnit(parsed.Credibility),
		Flags:       parsed.Flags,
	}, nil
}

// generateJSON runs one analysis call through the cache, rate limiter, and
// retry loop.
func (g *GeminiAnalyzer) generateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	key := g.cache.key(prompt)
	if cached, ok := g.cache.get(key); ok {
		return cached, nil
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		g.waitTurn()

		raw, err := g.client.GenerateJSON(ctx, prompt, tier)
		if err == nil {
			g.cache.put(key, raw)
			return raw, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.backoff * time.Duration(attempt)):
		}
	}
	return "", fmt.Errorf("analysis failed after %d attempts: %w", g.maxAttempts, lastErr)
}

// waitTurn enforces the minimum inter-call delay.
func (g *GeminiAnalyzer) waitTurn() {
	g.mu.Lock()
	elapsed := time.Since(g.lastCall)
	if elapsed < g.minInterval {
		time.Sleep(g.minInterval - elapsed)
	}
	g.lastCall = time.Now()
	g.mu.Unlock()
}

// buildPrompt joins the system and user templates for an analysis kind.
func buildPrompt(kind string, data map[string]string) (string, error) {
	system, err := prompts.Get(promptFile, kind+"_system")
	if err != nil {
		return "", err
	}
	user, err := prompts.Get(promptFile, kind+"_user")
	if err != nil {
		return "", err
	}
	return system + "\n\n" + prompts.Format(user, data), nil
}

// clampUnit bounds a model-reported score to [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
