package jobs

import (
	"time"

	"github.com/rajan170/ai-resume-analyzer/internal/matcher"
)

// Job is a stored job posting owned by a user.
type Job struct {
	ID             string
	OwnerID        string
	Title          string
	Department     string
	Description    string
	RequiredSkills []string
	CreatedAt      time.Time
}

// Posting converts the stored job into its matching representation.
func (j Job) Posting() matcher.JobPosting {
	return matcher.JobPosting{
		Title:          j.Title,
		Department:     j.Department,
		Description:    j.Description,
		RequiredSkills: j.RequiredSkills,
	}
}
