package parser

import "regexp"

// Patterns run over the raw text: the punctuation normalization strips is
// load-bearing for both.
var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)
)

// ExtractEmail returns the first email-shaped token in text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone-shaped token in text, or "".
// An optional country code, an optional parenthesized area code, a 3-digit
// exchange and a 4-digit line, with space/dot/dash separators. Phone-shaped
// IDs are an accepted false positive.
func ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}
