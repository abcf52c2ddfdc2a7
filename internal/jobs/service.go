package jobs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajan170/ai-resume-analyzer/internal/candidates"
	"github.com/rajan170/ai-resume-analyzer/internal/matcher"
)

// Service contains business logic for job postings and candidate matching.
type Service struct {
	Repo       Repo
	Candidates candidates.Repo
	Matcher    *matcher.Matcher
}

// Create records a new job posting.
func (s *Service) Create(ctx context.Context, ownerID, title, department, description string, requiredSkills []string) (Job, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return Job{}, ErrInvalidInput
	}
	if requiredSkills == nil {
		requiredSkills = []string{}
	}
	job := Job{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Title:          title,
		Department:     department,
		Description:    description,
		RequiredSkills: requiredSkills,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// List returns all job postings for the owner, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Job, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Delete removes a job posting.
func (s *Service) Delete(ctx context.Context, ownerID, jobID string) error {
	return s.Repo.Delete(ctx, ownerID, jobID)
}

// Match ranks job postings against a stored candidate. When inline postings
// are given they are matched as-is; otherwise the owner's stored jobs are
// used. Candidate lookup errors pass through from the candidates package.
func (s *Service) Match(ctx context.Context, ownerID, candidateID string, inline []matcher.JobPosting) ([]matcher.MatchResult, error) {
	candidate, err := s.Candidates.GetByID(ctx, ownerID, candidateID)
	if err != nil {
		return nil, err
	}

	postings := inline
	if len(postings) == 0 {
		stored, err := s.Repo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		postings = make([]matcher.JobPosting, 0, len(stored))
		for _, job := range stored {
			postings = append(postings, job.Posting())
		}
	}

	return s.Matcher.Match(ctx, candidate.Record(), postings), nil
}
