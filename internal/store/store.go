// Package store provides read-only job and candidate data providers. The
// matching core treats the provider as an opaque data source; in-memory and
// PostgreSQL implementations are included.
package store

import (
	"context"

	"github.com/jonathan/talent-match/internal/types"
)

// Provider is the read-only data source consumed by the match orchestrator.
type Provider interface {
	FindJobByID(ctx context.Context, id string) (*types.Job, error)
	FindCandidateByID(ctx context.Context, id string) (*types.Candidate, error)
	ListJobs(ctx context.Context) ([]types.Job, error)
	ListCandidates(ctx context.Context) ([]types.Candidate, error)
}
