package matcher

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rajan170/ai-resume-analyzer/internal/parser"
)

// stubEmbedder maps known texts to fixed vectors, so cosine scores are exact.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return []float32{1, 0, 0}, nil
}

func TestMatchOutputShape(t *testing.T) {
	m := New(stubEmbedder{})
	candidate := parser.CandidateRecord{RawText: "resume", Skills: []string{"Python"}}
	jobs := []JobPosting{
		{Title: "A", Description: "desc a"},
		{Title: "B", Description: "desc b"},
		{Title: "C", Description: "desc c"},
	}

	results := m.Match(context.Background(), candidate, jobs)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, res := range results {
		if res.MatchScore < 0 || res.MatchScore > 100 {
			t.Fatalf("score %v outside [0,100]", res.MatchScore)
		}
		if i > 0 && results[i-1].MatchScore < res.MatchScore {
			t.Fatalf("results not sorted descending: %v", results)
		}
	}
}

func TestMatchSkillBonus(t *testing.T) {
	// Identical vectors give semantic = 100 pre-bonus, so use orthogonal ones
	// to isolate the bonus: semantic = 0, bonus = overlap/required * 20.
	candidate := parser.CandidateRecord{
		RawText: "the resume",
		Skills:  []string{"Python"},
	}
	job := JobPosting{
		Title:          "Backend",
		Description:    "the job",
		RequiredSkills: []string{"Python", "SQL"},
	}

	emb := stubEmbedder{vectors: map[string][]float32{
		"the resume Python":          {1, 0},
		"the job Python SQL Backend": {0, 1},
	}}
	m := New(emb)

	results := m.Match(context.Background(), candidate, []JobPosting{job})
	if got := results[0].MatchScore; math.Abs(got-10) > 1e-9 {
		t.Fatalf("score = %v, want 10 (overlap 1/2 * 20)", got)
	}
}

func TestMatchScoreCapped(t *testing.T) {
	candidate := parser.CandidateRecord{
		RawText: "resume text",
		Skills:  []string{"Python", "SQL"},
	}
	job := JobPosting{
		Title:          "Data",
		Description:    "resume text", // identical embedding, semantic = 100
		RequiredSkills: []string{"Python", "SQL"},
	}

	m := New(stubEmbedder{})
	results := m.Match(context.Background(), candidate, []JobPosting{job})
	if results[0].MatchScore != 100 {
		t.Fatalf("score = %v, want capped 100", results[0].MatchScore)
	}
}

func TestMatchSkillOverlapCaseInsensitive(t *testing.T) {
	candidate := parser.CandidateRecord{RawText: "r", Skills: []string{"python", "sql"}}
	job := JobPosting{Description: "d", RequiredSkills: []string{"Python", "SQL"}}

	emb := stubEmbedder{vectors: map[string][]float32{
		"r python sql": {1, 0},
		"d Python SQL": {0, 1},
	}}
	m := New(emb)

	results := m.Match(context.Background(), candidate, []JobPosting{job})
	if got := results[0].MatchScore; math.Abs(got-20) > 1e-9 {
		t.Fatalf("score = %v, want 20 (full overlap)", got)
	}
}

func TestMatchEmbedderUnavailable(t *testing.T) {
	candidate := parser.CandidateRecord{RawText: "resume", Skills: []string{"Python"}}
	jobs := []JobPosting{
		{Title: "With skills", Description: "d", RequiredSkills: []string{"Python"}},
		{Title: "No skills", Description: "d"},
	}

	m := New(stubEmbedder{err: errors.New("model load failed")})
	results := m.Match(context.Background(), candidate, jobs)

	// Keyword bonus still applies; pure-semantic job degrades to 0.
	if results[0].Title != "With skills" || math.Abs(results[0].MatchScore-20) > 1e-9 {
		t.Fatalf("unexpected first result %+v", results[0])
	}
	if results[1].MatchScore != 0 {
		t.Fatalf("expected 0 for degraded semantic-only job, got %v", results[1].MatchScore)
	}
}

func TestMatchNilEmbedder(t *testing.T) {
	m := New(nil)
	results := m.Match(context.Background(), parser.CandidateRecord{RawText: "r"}, []JobPosting{{Title: "A"}})
	if results[0].MatchScore != 0 {
		t.Fatalf("expected 0 without a backend, got %v", results[0].MatchScore)
	}
}

func TestMatchEmptyTexts(t *testing.T) {
	m := New(stubEmbedder{})
	results := m.Match(context.Background(), parser.CandidateRecord{}, []JobPosting{{}})
	if results[0].MatchScore != 0 {
		t.Fatalf("expected 0 for empty texts, got %v", results[0].MatchScore)
	}
}

func TestMatchStableTieOrder(t *testing.T) {
	candidate := parser.CandidateRecord{RawText: "resume"}
	jobs := []JobPosting{
		{Title: "first", Description: "same"},
		{Title: "second", Description: "same"},
		{Title: "third", Description: "same"},
	}

	m := New(stubEmbedder{err: errors.New("down")})
	results := m.Match(context.Background(), candidate, jobs)
	for i, want := range []string{"first", "second", "third"} {
		if results[i].Title != want {
			t.Fatalf("tie order broken at %d: got %q, want %q", i, results[i].Title, want)
		}
	}
}

// countingEmbedder records how many times each text is embedded.
type countingEmbedder struct {
	calls map[string]int
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	c.calls[text]++
	return []float32{1, 0}, nil
}

func TestMatchEmbedsCandidateOnce(t *testing.T) {
	candidate := parser.CandidateRecord{RawText: "resume", Skills: []string{"Python"}}
	jobs := []JobPosting{
		{Title: "A", Description: "alpha", RequiredSkills: []string{"Go"}},
		{Title: "B", Description: "beta", RequiredSkills: []string{"Go"}},
		{Title: "C", Description: "gamma", RequiredSkills: []string{"Go"}},
	}

	emb := &countingEmbedder{calls: map[string]int{}}
	m := New(emb)
	m.Match(context.Background(), candidate, jobs)

	if got := emb.calls["resume Python"]; got != 1 {
		t.Fatalf("candidate embedded %d times, want 1", got)
	}
	for _, text := range []string{"alpha Go A", "beta Go B", "gamma Go C"} {
		if got := emb.calls[text]; got != 1 {
			t.Fatalf("job %q embedded %d times, want 1", text, got)
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	candidate := parser.CandidateRecord{RawText: "resume", Skills: []string{"Python", "AWS"}}
	jobs := []JobPosting{
		{Title: "A", Description: "alpha", RequiredSkills: []string{"Python"}},
		{Title: "B", Description: "beta", RequiredSkills: []string{"AWS", "SQL"}},
	}

	emb := stubEmbedder{vectors: map[string][]float32{
		"alpha Python A":    {0.5, 0.5},
		"beta AWS SQL B":    {0.9, 0.1},
		"resume Python AWS": {0.7, 0.3},
	}}
	m := New(emb)

	first := m.Match(context.Background(), candidate, jobs)
	second := m.Match(context.Background(), candidate, jobs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("match not deterministic: %v vs %v", first, second)
	}
}
