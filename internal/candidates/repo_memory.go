package candidates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Candidate
}

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Candidate)}
}

func (r *MemoryRepo) Create(ctx context.Context, candidate Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[candidate.ID] = candidate
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, candidateID string) (Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	candidate, ok := r.items[candidateID]
	if !ok || candidate.OwnerID != ownerID {
		return Candidate{}, ErrNotFound
	}
	return candidate, nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Candidate, 0)
	for _, candidate := range r.items {
		if candidate.OwnerID == ownerID {
			out = append(out, candidate)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) UpdateName(ctx context.Context, ownerID, candidateID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.items[candidateID]
	if !ok || candidate.OwnerID != ownerID {
		return ErrNotFound
	}
	candidate.Name = name
	r.items[candidateID] = candidate
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID, candidateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.items[candidateID]
	if !ok || candidate.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.items, candidateID)
	return nil
}
