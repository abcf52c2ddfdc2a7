package jobs

import "context"

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, job Job) error
	ListByOwner(ctx context.Context, ownerID string) ([]Job, error)
	Delete(ctx context.Context, ownerID, jobID string) error
}
