// Package matching assembles explainable match results: it resolves the
// candidate and job, invokes the scoring engine, optionally augments the
// deterministic score with AI analysis, and produces the explanation,
// recommendations, and confidence value.
package matching

import (
	"context"

	"github.com/jonathan/talent-match/internal/augment"
	"github.com/jonathan/talent-match/internal/resolver"
	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/store"
	"github.com/jonathan/talent-match/internal/types"
)

// Orchestrator runs the match pipeline. Construct once at process start; it
// holds only immutable collaborators and is safe for concurrent use.
type Orchestrator struct {
	provider store.Provider
	engine   *scoring.Engine
	resolver *resolver.Resolver
	analyzer augment.Analyzer // optional; nil disables augmentation
}

// NewOrchestrator wires the pipeline. Pass a nil analyzer to run fully
// deterministic matches.
func NewOrchestrator(provider store.Provider, engine *scoring.Engine, res *resolver.Resolver, analyzer augment.Analyzer) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		engine:   engine,
		resolver: res,
		analyzer: analyzer,
	}
}

// Match scores one candidate against one job and assembles the full result.
// Returns a NotFoundError when either id does not resolve; augmentation
// failures degrade the result silently rather than erroring.
func (o *Orchestrator) Match(ctx context.Context, jobID, candidateID string) (*types.MatchingResult, error) {
	if jobID == "" || candidateID == "" {
		return nil, &InvalidInputError{Message: "job id and candidate id are required"}
	}

	job, err := o.provider.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	candidate, err := o.provider.FindCandidateByID(ctx, candidateID)
	if err != nil {
		return nil, classifyProviderError(err)
	}

	return o.matchPair(ctx, candidate, job), nil
}

// matchPair runs the scoring and assembly stages for already-resolved
// entities. Ranking operations reuse it to avoid repeated lookups.
func (o *Orchestrator) matchPair(ctx context.Context, candidate *types.Candidate, job *types.Job) *types.MatchingResult {
	score := o.engine.Score(candidate, job)
	signal := o.collectSignal(ctx, candidate, job, score.Breakdown)

	return &types.MatchingResult{
		Candidate:       candidate,
		Job:             job,
		Score:           score,
		Explanation:     o.buildExplanation(score, signal),
		Recommendations: o.buildRecommendations(candidate, score, signal),
		Confidence:      computeConfidence(score.Breakdown, signal),
	}
}
