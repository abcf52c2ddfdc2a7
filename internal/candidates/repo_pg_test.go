package candidates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateSerializesListColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	candidate := Candidate{
		ID:            "cand-1",
		OwnerID:       "user-1",
		Name:          "John Smith",
		Email:         "john@example.com",
		Phone:         "555-123-4567",
		JobTitle:      "Software Engineer",
		Skills:        []string{"Python", "AWS"},
		RawText:       "John Smith resume",
		ATSScore:      85,
		Feedback:      []string{"Consider adding quantifiable achievements/metrics"},
		FoundSections: []string{"experience", "skills"},
		FileName:      "resume.pdf",
		StorageKey:    "user-1/resume.pdf",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO candidates").
		WithArgs(
			candidate.ID,
			candidate.OwnerID,
			candidate.Name,
			candidate.Email,
			candidate.Phone,
			candidate.JobTitle,
			[]byte(`["Python","AWS"]`),
			candidate.RawText,
			candidate.ATSScore,
			sqlmock.AnyArg(), // feedback
			[]byte(`["experience","skills"]`),
			candidate.FileName,
			sqlmock.AnyArg(), // storage_key
			candidate.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), candidate); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesListColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC().Truncate(time.Second)

	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "name", "email", "phone", "job_title", "skills",
		"raw_text", "ats_score", "feedback", "found_sections", "file_name",
		"storage_key", "created_at",
	}).AddRow(
		"cand-1", "user-1", "John Smith", "john@example.com", "555-123-4567",
		"Software Engineer", []byte(`["Python","AWS"]`), "raw", 85,
		[]byte(`[]`), []byte(`["skills"]`), "resume.pdf", "user-1/resume.pdf",
		created,
	)

	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs("user-1", "cand-1").
		WillReturnRows(rows)

	candidate, err := repo.GetByID(context.Background(), "user-1", "cand-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(candidate.Skills) != 2 || candidate.Skills[0] != "Python" {
		t.Fatalf("unexpected skills: %v", candidate.Skills)
	}
	if len(candidate.Feedback) != 0 {
		t.Fatalf("expected empty feedback, got %v", candidate.Feedback)
	}
	if candidate.StorageKey != "user-1/resume.pdf" {
		t.Fatalf("unexpected storage key: %q", candidate.StorageKey)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateNameReportsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE candidates").
		WithArgs("user-1", "missing", "New Name").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateName(context.Background(), "user-1", "missing", "New Name"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteReportsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM candidates").
		WithArgs("user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
