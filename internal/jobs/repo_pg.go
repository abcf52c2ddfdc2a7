package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job posting.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (
    id,
    owner_id,
    title,
    department,
    description,
    required_skills,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	skills := job.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	encoded, err := json.Marshal(skills)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.OwnerID,
		job.Title,
		job.Department,
		job.Description,
		encoded,
		job.CreatedAt,
	)
	return err
}

// ListByOwner returns all job postings for an owner, newest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Job, error) {
	const query = `
SELECT id, owner_id, title, department, description, required_skills, created_at
FROM jobs
WHERE owner_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		var job Job
		var skills []byte
		if err := rows.Scan(
			&job.ID,
			&job.OwnerID,
			&job.Title,
			&job.Department,
			&job.Description,
			&skills,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &job.RequiredSkills); err != nil {
				return nil, fmt.Errorf("decode required_skills: %w", err)
			}
		}
		if job.RequiredSkills == nil {
			job.RequiredSkills = []string{}
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// Delete removes a job posting.
func (r *PGRepo) Delete(ctx context.Context, ownerID, jobID string) error {
	const query = `
DELETE FROM jobs
WHERE owner_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, jobID)
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
