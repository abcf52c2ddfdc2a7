// Package matcher ranks job postings against a candidate profile using a
// hybrid score: dense semantic similarity from an embedding backend plus a
// capped bonus for exact required-skill overlap. Pure embedding similarity
// under-weights the skills recruiters treat as non-negotiable; the additive
// bonus lets exact-skill evidence break near-ties without dominating.
package matcher

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/rajan170/ai-resume-analyzer/internal/nlp"
	"github.com/rajan170/ai-resume-analyzer/internal/parser"
)

const skillBonusMax = 20.0

// JobPosting is one job to rank. Immutable once created; duplicate titles
// are permitted.
type JobPosting struct {
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

// MatchResult is a JobPosting augmented with its match score in [0,100].
type MatchResult struct {
	JobPosting
	MatchScore float64 `json:"match_score"`
}

// Matcher scores and ranks jobs for a candidate. Safe for concurrent use;
// the embedder is the only shared resource and must itself be thread-safe.
type Matcher struct {
	embedder nlp.Embedder
}

// New builds a Matcher. A nil embedder degrades every semantic score to 0,
// leaving only the keyword bonus.
func New(embedder nlp.Embedder) *Matcher {
	if embedder == nil {
		embedder = nlp.UnavailableEmbedder{}
	}
	return &Matcher{embedder: embedder}
}

// Match returns one MatchResult per input job, sorted descending by score.
// The sort is stable, so jobs with identical scores keep their input order
// and the output is deterministic for identical inputs.
func (m *Matcher) Match(ctx context.Context, candidate parser.CandidateRecord, jobs []JobPosting) []MatchResult {
	candidateText := strings.TrimSpace(candidate.RawText + " " + strings.Join(candidate.Skills, " "))

	// The candidate vector is shared across all jobs, one Embed call total.
	var candidateVec []float32
	if candidateText != "" {
		if vec, err := m.embedder.Embed(ctx, candidateText); err == nil {
			candidateVec = vec
		}
	}

	candidateSkills := make(map[string]bool, len(candidate.Skills))
	for _, skill := range candidate.Skills {
		candidateSkills[strings.ToLower(skill)] = true
	}

	results := make([]MatchResult, 0, len(jobs))
	for _, job := range jobs {
		jobText := strings.TrimSpace(job.Description + " " + strings.Join(job.RequiredSkills, " ") + " " + job.Title)

		score := m.similarity(ctx, candidateVec, jobText)

		if len(job.RequiredSkills) > 0 {
			matched := 0
			for _, skill := range job.RequiredSkills {
				if candidateSkills[strings.ToLower(skill)] {
					matched++
				}
			}
			score += float64(matched) / float64(len(job.RequiredSkills)) * skillBonusMax
		}

		results = append(results, MatchResult{
			JobPosting: job,
			MatchScore: clamp(score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// similarity returns cosine similarity between the candidate vector and a job
// text, scaled to [0,100]. A nil vector, empty text, or an unavailable
// backend yields 0 rather than an error.
func (m *Matcher) similarity(ctx context.Context, candidateVec []float32, jobText string) float64 {
	if candidateVec == nil || jobText == "" {
		return 0
	}
	jobVec, err := m.embedder.Embed(ctx, jobText)
	if err != nil {
		return 0
	}
	return math.Round(nlp.Cosine(candidateVec, jobVec)*100*100) / 100
}

func clamp(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
