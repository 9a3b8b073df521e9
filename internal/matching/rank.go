package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-match/internal/types"
)

// rankConcurrency bounds the parallel match pipelines during ranking.
const rankConcurrency = 4

// RankCandidates runs the match pipeline for every candidate against one job
// and returns the results sorted descending by overall score, truncated to
// limit when limit > 0. Ties keep original collection order.
func (o *Orchestrator) RankCandidates(ctx context.Context, jobID string, limit int) ([]types.MatchingResult, error) {
	if jobID == "" {
		return nil, &InvalidInputError{Message: "job id is required"}
	}

	job, err := o.provider.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	candidates, err := o.provider.ListCandidates(ctx)
	if err != nil {
		return nil, &InternalError{Err: err}
	}

	results := make([]types.MatchingResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)
	for i := range candidates {
		g.Go(func() error {
			results[i] = *o.matchPair(gctx, &candidates[i], job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &InternalError{Err: err}
	}

	return sortAndTruncate(results, limit), nil
}

// RankJobs runs the match pipeline for one candidate against every job and
// returns the results sorted descending by overall score.
func (o *Orchestrator) RankJobs(ctx context.Context, candidateID string, limit int) ([]types.MatchingResult, error) {
	if candidateID == "" {
		return nil, &InvalidInputError{Message: "candidate id is required"}
	}

	candidate, err := o.provider.FindCandidateByID(ctx, candidateID)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	jobs, err := o.provider.ListJobs(ctx)
	if err != nil {
		return nil, &InternalError{Err: err}
	}

	results := make([]types.MatchingResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)
	for i := range jobs {
		g.Go(func() error {
			results[i] = *o.matchPair(gctx, candidate, &jobs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &InternalError{Err: err}
	}

	return sortAndTruncate(results, limit), nil
}

// sortAndTruncate orders results by descending overall score, stable on the
// original collection order, and applies the optional limit.
func sortAndTruncate(results []types.MatchingResult, limit int) []types.MatchingResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.OverallScore > results[j].Score.OverallScore
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
