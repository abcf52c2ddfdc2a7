package candidates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new candidate.
func (r *PGRepo) Create(ctx context.Context, candidate Candidate) error {
	const query = `
INSERT INTO candidates (
    id,
    owner_id,
    name,
    email,
    phone,
    job_title,
    skills,
    raw_text,
    ats_score,
    feedback,
    found_sections,
    file_name,
    storage_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	skills, err := marshalStrings(candidate.Skills)
	if err != nil {
		return err
	}
	feedback, err := marshalStrings(candidate.Feedback)
	if err != nil {
		return err
	}
	sections, err := marshalStrings(candidate.FoundSections)
	if err != nil {
		return err
	}

	var storageKey sql.NullString
	if candidate.StorageKey != "" {
		storageKey = sql.NullString{String: candidate.StorageKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		candidate.ID,
		candidate.OwnerID,
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		candidate.JobTitle,
		skills,
		candidate.RawText,
		candidate.ATSScore,
		feedback,
		sections,
		candidate.FileName,
		storageKey,
		candidate.CreatedAt,
	)
	return err
}

// GetByID returns one candidate owned by ownerID.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, candidateID string) (Candidate, error) {
	const query = `
SELECT id, owner_id, name, email, phone, job_title, skills, raw_text, ats_score, feedback, found_sections, file_name, storage_key, created_at
FROM candidates
WHERE owner_id = $1 AND id = $2`
	row := r.DB.QueryRowContext(ctx, query, ownerID, candidateID)
	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return candidate, nil
}

// ListByOwner returns all candidates for an owner, newest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Candidate, error) {
	const query = `
SELECT id, owner_id, name, email, phone, job_title, skills, raw_text, ats_score, feedback, found_sections, file_name, storage_key, created_at
FROM candidates
WHERE owner_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candidate, 0)
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, candidate)
	}
	return out, rows.Err()
}

// UpdateName renames a candidate.
func (r *PGRepo) UpdateName(ctx context.Context, ownerID, candidateID, name string) error {
	const query = `
UPDATE candidates
SET name = $3
WHERE owner_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, candidateID, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a candidate row.
func (r *PGRepo) Delete(ctx context.Context, ownerID, candidateID string) error {
	const query = `
DELETE FROM candidates
WHERE owner_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, candidateID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var candidate Candidate
	var skills, feedback, sections []byte
	var storageKey sql.NullString
	err := row.Scan(
		&candidate.ID,
		&candidate.OwnerID,
		&candidate.Name,
		&candidate.Email,
		&candidate.Phone,
		&candidate.JobTitle,
		&skills,
		&candidate.RawText,
		&candidate.ATSScore,
		&feedback,
		&sections,
		&candidate.FileName,
		&storageKey,
		&candidate.CreatedAt,
	)
	if err != nil {
		return Candidate{}, err
	}
	if candidate.Skills, err = unmarshalStrings(skills); err != nil {
		return Candidate{}, fmt.Errorf("decode skills: %w", err)
	}
	if candidate.Feedback, err = unmarshalStrings(feedback); err != nil {
		return Candidate{}, fmt.Errorf("decode feedback: %w", err)
	}
	if candidate.FoundSections, err = unmarshalStrings(sections); err != nil {
		return Candidate{}, fmt.Errorf("decode found_sections: %w", err)
	}
	if storageKey.Valid {
		candidate.StorageKey = storageKey.String
	}
	return candidate, nil
}

func marshalStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func unmarshalStrings(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
