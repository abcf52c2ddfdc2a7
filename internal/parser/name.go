package parser

import (
	"context"
	"strings"

	"github.com/rajan170/ai-resume-analyzer/internal/nlp"
)

const headerLineCount = 10

// ExtractName finds the candidate's name in the document header, or returns "".
//
// Candidate lines come from the first 3 non-empty lines: punctuation stripped,
// rejected when a digit appears, when any word hits the forbidden set (skills,
// section headers, role words), or when the word count falls outside 1..4.
// PERSON entities over the first 10 lines then act as a confidence booster: a
// span that matches a candidate line verbatim wins outright, a multi-word span
// is still accepted. Without a qualifying entity the first candidate line is
// returned in title case.
func (p *Parser) ExtractName(ctx context.Context, text string) string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return ""
	}

	candidates := p.nameCandidates(lines)

	header := lines
	if len(header) > headerLineCount {
		header = header[:headerLineCount]
	}
	if ents, err := p.rec.Entities(ctx, strings.Join(header, "\n")); err == nil {
		if name := p.pickPersonEntity(ents, candidates); name != "" {
			return name
		}
	}

	if len(candidates) > 0 {
		return titleCase(candidates[0])
	}
	return ""
}

func (p *Parser) nameCandidates(lines []string) []string {
	limit := 3
	if len(lines) < limit {
		limit = len(lines)
	}

	var candidates []string
	for _, line := range lines[:limit] {
		words := strings.Fields(nonWordRe.ReplaceAllString(line, ""))
		if len(words) == 0 || len(words) > 4 {
			continue
		}
		if containsDigit(line) {
			continue
		}
		if p.anyForbidden(words) {
			continue
		}
		candidates = append(candidates, line)
	}
	return candidates
}

func (p *Parser) pickPersonEntity(ents []nlp.Entity, candidates []string) string {
	for _, ent := range ents {
		if ent.Label != nlp.LabelPerson {
			continue
		}
		name := strings.TrimSpace(ent.Text)
		// Multi-line spans collapse to their first line.
		if idx := strings.IndexByte(name, '\n'); idx >= 0 {
			name = name[:idx]
		}
		clean := nonWordRe.ReplaceAllString(name, "")
		if strings.TrimSpace(clean) == "" {
			continue
		}
		if containsDigit(name) {
			continue
		}
		if p.forbidden[strings.ToLower(strings.TrimSpace(clean))] {
			continue
		}
		if p.anyForbidden(strings.Fields(name)) {
			continue
		}

		for _, candidate := range candidates {
			if name == candidate {
				return name
			}
		}
		if len(strings.Fields(name)) >= 2 {
			return name
		}
	}
	return ""
}

func (p *Parser) anyForbidden(words []string) bool {
	for _, w := range words {
		if p.forbidden[strings.ToLower(w)] {
			return true
		}
	}
	return false
}
