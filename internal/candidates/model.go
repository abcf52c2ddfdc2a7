package candidates

import (
	"time"

	"github.com/rajan170/ai-resume-analyzer/internal/parser"
	"github.com/rajan170/ai-resume-analyzer/internal/scorer"
)

// Candidate is a stored candidate profile: the parsed record, its ATS score
// report, and the uploaded source file's location.
type Candidate struct {
	ID            string
	OwnerID       string
	Name          string
	Email         string
	Phone         string
	JobTitle      string
	Skills        []string
	RawText       string
	ATSScore      int
	Feedback      []string
	FoundSections []string
	FileName      string
	StorageKey    string
	CreatedAt     time.Time
}

// Record rebuilds the immutable parse result for scoring and matching.
func (c Candidate) Record() parser.CandidateRecord {
	return parser.CandidateRecord{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Skills:   c.Skills,
		JobTitle: c.JobTitle,
		RawText:  c.RawText,
	}
}

// fromParse assembles a Candidate out of a parse result and its score report.
func fromParse(id, ownerID string, rec parser.CandidateRecord, report scorer.ScoreReport) Candidate {
	return Candidate{
		ID:            id,
		OwnerID:       ownerID,
		Name:          rec.Name,
		Email:         rec.Email,
		Phone:         rec.Phone,
		JobTitle:      rec.JobTitle,
		Skills:        rec.Skills,
		RawText:       rec.RawText,
		ATSScore:      report.ATSScore,
		Feedback:      report.Feedback,
		FoundSections: report.FoundSections,
		CreatedAt:     time.Now().UTC(),
	}
}
