package parser

import (
	"context"
	"strings"

	"github.com/rajan170/ai-resume-analyzer/internal/nlp"
)

// ExtractSkills returns the vocabulary entries present in text, in vocabulary
// order and canonical casing. Two signals feed the result: a case-insensitive
// substring scan of every vocabulary term, and ORG/PRODUCT/LANGUAGE entity
// spans whose surface text exactly equals a vocabulary entry. Only vocabulary
// members can appear in the output; a recognizer failure just drops the
// second signal.
func (p *Parser) ExtractSkills(ctx context.Context, text string) []string {
	if text == "" {
		return []string{}
	}

	found := make(map[string]bool, len(p.skills))
	textLower := strings.ToLower(text)

	for _, skill := range p.skills {
		if strings.Contains(textLower, strings.ToLower(skill)) {
			found[strings.ToLower(skill)] = true
		}
	}

	if ents, err := p.rec.Entities(ctx, text); err == nil {
		vocab := make(map[string]bool, len(p.skills))
		for _, skill := range p.skills {
			vocab[skill] = true
		}
		for _, ent := range ents {
			switch ent.Label {
			case nlp.LabelOrg, nlp.LabelProduct, nlp.LabelLanguage:
				if vocab[ent.Text] {
					found[strings.ToLower(ent.Text)] = true
				}
			}
		}
	}

	out := make([]string, 0, len(found))
	for _, skill := range p.skills {
		if found[strings.ToLower(skill)] {
			out = append(out, skill)
		}
	}
	return out
}
