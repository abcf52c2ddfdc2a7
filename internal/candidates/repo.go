package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	Create(ctx context.Context, candidate Candidate) error
	GetByID(ctx context.Context, ownerID, candidateID string) (Candidate, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Candidate, error)
	UpdateName(ctx context.Context, ownerID, candidateID, name string) error
	Delete(ctx context.Context, ownerID, candidateID string) error
}
