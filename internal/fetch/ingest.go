package fetch

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/talent-match/internal/resolver"
	"github.com/jonathan/talent-match/internal/types"
)

// Ingestor turns a live job posting page into a draft Job by extracting the
// posting text and resolving skill mentions against the catalog.
type Ingestor struct {
	resolver *resolver.Resolver
	opts     *Options
}

// NewIngestor creates an Ingestor using the given resolver.
func NewIngestor(res *resolver.Resolver, opts *Options) *Ingestor {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Ingestor{resolver: res, opts: opts}
}

// IngestJobPosting fetches a posting URL and returns a draft Job. Every
// resolved skill becomes a preferred requirement; duration and level are left
// for a human to fill in. The extraction result is returned alongside so
// callers can surface unmatched terms.
func (in *Ingestor) IngestJobPosting(ctx context.Context, urlStr string) (*types.Job, *types.SkillExtraction, error) {
	result, err := URL(ctx, urlStr, in.opts)
	if err != nil {
		return nil, nil, err
	}

	title, text, err := ExtractPosting(result.HTML)
	if err != nil {
		return nil, nil, &Error{URL: urlStr, Message: "failed to extract posting text", Cause: err}
	}

	extraction := in.resolver.ExtractSkillsFromText(title + "\n" + text)

	job := &types.Job{
		ID:    "job-" + uuid.NewString(),
		Title: title,
	}
	for _, name := range extraction.Skills {
		id, ok := in.resolver.ResolveID(name)
		if !ok {
			continue
		}
		job.Requirements = append(job.Requirements, types.JobRequirement{
			SkillID:    id,
			IsRequired: false,
		})
	}

	return job, &extraction, nil
}
