package parser

import (
	"context"
	"strings"
	"unicode"

	"github.com/rajan170/ai-resume-analyzer/internal/nlp"
)

// CandidateRecord is the structured result of parsing one resume. It is
// created once per Parse call and never mutated afterwards; consumers that
// need to attach derived data work on copies.
type CandidateRecord struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Skills   []string `json:"skills"`
	JobTitle string   `json:"job_title"`
	RawText  string   `json:"raw_text"`
}

// Parser extracts candidate information from raw resume text. Vocabularies
// are fixed at construction and never mutated, so a Parser is safe for
// concurrent use.
type Parser struct {
	skills    []string
	titles    []string
	forbidden map[string]bool
	rec       nlp.Recognizer
}

// New builds a Parser with the default vocabularies. A nil recognizer
// disables the NER paths; every extractor still works off its heuristics.
func New(rec nlp.Recognizer) *Parser {
	return NewWithVocab(rec, DefaultSkills, DefaultTitles)
}

// NewWithVocab builds a Parser with custom skill and title vocabularies.
// Replacement vocabularies keep the closed-set contract: only their entries
// can ever appear in extracted skills.
func NewWithVocab(rec nlp.Recognizer, skills, titles []string) *Parser {
	if rec == nil {
		rec = nlp.UnavailableRecognizer{}
	}
	forbidden := make(map[string]bool, len(skills)+len(structuralWords))
	for _, s := range skills {
		forbidden[strings.ToLower(s)] = true
	}
	for _, w := range structuralWords {
		forbidden[w] = true
	}
	return &Parser{
		skills:    skills,
		titles:    titles,
		forbidden: forbidden,
		rec:       rec,
	}
}

// Parse extracts a CandidateRecord from resume text. It is total: empty or
// unmatched input produces empty fields, never an error.
func (p *Parser) Parse(ctx context.Context, text string) CandidateRecord {
	return CandidateRecord{
		Name:     p.ExtractName(ctx, text),
		Email:    ExtractEmail(text),
		Phone:    ExtractPhone(text),
		Skills:   p.ExtractSkills(ctx, text),
		JobTitle: p.ExtractJobTitle(text),
		RawText:  text,
	}
}

// nonEmptyLines returns trimmed non-empty lines of text in document order.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
