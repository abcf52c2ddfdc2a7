package candidates

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/rajan170/ai-resume-analyzer/internal/extract"
	"github.com/rajan170/ai-resume-analyzer/internal/llm"
	"github.com/rajan170/ai-resume-analyzer/internal/parser"
	"github.com/rajan170/ai-resume-analyzer/internal/scorer"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/storage/object"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/telemetry"
)

// Service contains business logic for candidates: file ingestion, parsing,
// scoring and critique.
type Service struct {
	Store  object.ObjectStore
	Repo   Repo
	Parser *parser.Parser
	Critic llm.Client
}

// Upload stores the resume file, extracts its text, parses and scores it,
// and records the resulting candidate.
func (s *Service) Upload(ctx context.Context, ownerID, fileName string, r io.Reader) (Candidate, error) {
	if fileName == "" {
		return Candidate{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Candidate{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Candidate{}, ErrInvalidInput
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, ownerID, fileName, bytes.NewReader(data))
	if err != nil {
		return Candidate{}, err
	}

	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		return Candidate{}, err
	}

	candidate, err := s.ingest(ctx, ownerID, text)
	if err != nil {
		return Candidate{}, err
	}
	candidate.FileName = fileName
	candidate.StorageKey = storageKey

	if err := s.Repo.Create(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// IngestText parses and scores raw resume text without a backing file.
func (s *Service) IngestText(ctx context.Context, ownerID, text string) (Candidate, error) {
	candidate, err := s.ingest(ctx, ownerID, text)
	if err != nil {
		return Candidate{}, err
	}
	if err := s.Repo.Create(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

func (s *Service) ingest(ctx context.Context, ownerID, text string) (Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return Candidate{}, ErrInvalidInput
	}
	record := s.Parser.Parse(ctx, text)
	report := scorer.Score(record)
	return fromParse(uuid.NewString(), ownerID, record, report), nil
}

// List returns all candidates for the owner, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Candidate, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Get returns one candidate.
func (s *Service) Get(ctx context.Context, ownerID, candidateID string) (Candidate, error) {
	return s.Repo.GetByID(ctx, ownerID, candidateID)
}

// Rename updates the candidate's display name.
func (s *Service) Rename(ctx context.Context, ownerID, candidateID, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	return s.Repo.UpdateName(ctx, ownerID, candidateID, name)
}

// Delete removes the candidate record and its stored file, if any.
func (s *Service) Delete(ctx context.Context, ownerID, candidateID string) error {
	candidate, err := s.Repo.GetByID(ctx, ownerID, candidateID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, ownerID, candidateID); err != nil {
		return err
	}
	if candidate.StorageKey != "" {
		if err := s.Store.Delete(ctx, candidate.StorageKey); err != nil {
			telemetry.Error("candidate.file_cleanup_failed", map[string]any{
				"candidate_id": candidateID,
				"storage_key":  candidate.StorageKey,
				"error":        err.Error(),
			})
		}
	}
	return nil
}

// Critique asks the configured LLM for qualitative feedback on the
// candidate's resume text.
func (s *Service) Critique(ctx context.Context, ownerID, candidateID string) (string, error) {
	candidate, err := s.Repo.GetByID(ctx, ownerID, candidateID)
	if err != nil {
		return "", err
	}
	return s.Critic.Critique(ctx, candidate.RawText)
}
