package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/rajan170/ai-resume-analyzer/internal/candidates"
	"github.com/rajan170/ai-resume-analyzer/internal/matcher"
)

func newMatchService(t *testing.T) (*Service, string) {
	t.Helper()
	candidateRepo := candidates.NewMemoryRepo()
	candidate := candidates.Candidate{
		ID:      "cand-1",
		OwnerID: "user-1",
		Name:    "John Smith",
		Skills:  []string{"Python", "AWS", "Docker"},
		RawText: "John Smith resume text",
	}
	if err := candidateRepo.Create(context.Background(), candidate); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	svc := &Service{
		Repo:       NewMemoryRepo(),
		Candidates: candidateRepo,
		Matcher:    matcher.New(nil),
	}
	return svc, candidate.ID
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _ := newMatchService(t)

	if _, err := svc.Create(context.Background(), "user-1", "", "", "desc", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", "Backend Engineer", "", "", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty description, got %v", err)
	}

	job, err := svc.Create(context.Background(), "user-1", "Backend Engineer", "Platform", "Build APIs", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected generated id")
	}
	if job.RequiredSkills == nil {
		t.Fatalf("expected non-nil required skills")
	}
}

func TestMatchUsesStoredJobs(t *testing.T) {
	svc, candidateID := newMatchService(t)

	if _, err := svc.Create(context.Background(), "user-1", "Backend Engineer", "Platform", "Build APIs", []string{"Python", "AWS"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", "SRE", "Infra", "Run clusters", []string{"Go", "Kubernetes"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	results, err := svc.Match(context.Background(), "user-1", candidateID, nil)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// Without an embedding backend only the skill-overlap bonus scores.
	if results[0].Title != "Backend Engineer" {
		t.Fatalf("expected full-overlap job first, got %q", results[0].Title)
	}
	if results[0].MatchScore != 20 {
		t.Fatalf("expected score 20, got %v", results[0].MatchScore)
	}
	if results[0].MatchScore < results[1].MatchScore {
		t.Fatalf("results not sorted descending")
	}
}

func TestMatchPrefersInlineJobs(t *testing.T) {
	svc, candidateID := newMatchService(t)

	if _, err := svc.Create(context.Background(), "user-1", "Stored Job", "", "stored", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	inline := []matcher.JobPosting{
		{Title: "Inline Job", Description: "inline", RequiredSkills: []string{"Docker"}},
	}
	results, err := svc.Match(context.Background(), "user-1", candidateID, inline)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Inline Job" {
		t.Fatalf("expected inline jobs only, got %+v", results)
	}
}

func TestMatchUnknownCandidate(t *testing.T) {
	svc, _ := newMatchService(t)

	if _, err := svc.Match(context.Background(), "user-1", "missing", nil); !errors.Is(err, candidates.ErrNotFound) {
		t.Fatalf("expected candidates.ErrNotFound, got %v", err)
	}
}
