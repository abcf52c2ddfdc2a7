package parser

import "strings"

// ExtractJobTitle scans the first 10 non-empty lines for a title-vocabulary
// entry, case-insensitive. The vocabulary is checked in order and the first
// entry found anywhere in the header wins, so "Software Engineer" beats a
// bare "Senior" even when the latter appears on an earlier line. When the
// containing line has at most 5 words the whole line is returned title-cased
// as richer context; otherwise just the matched term. No match returns "".
func (p *Parser) ExtractJobTitle(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) > headerLineCount {
		lines = lines[:headerLineCount]
	}

	for _, title := range p.titles {
		titleLower := strings.ToLower(title)
		for _, line := range lines {
			if !strings.Contains(strings.ToLower(line), titleLower) {
				continue
			}
			if len(strings.Fields(line)) <= 5 {
				return titleCase(line)
			}
			return title
		}
	}
	return ""
}
