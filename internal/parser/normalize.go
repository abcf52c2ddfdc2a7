package parser

import (
	"regexp"
	"strings"
)

var (
	// Letters and digits in any script survive; \w alone would strip
	// accented letters.
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize strips characters that are neither alphanumeric nor whitespace
// and collapses whitespace runs to single spaces. Idempotent: punctuation is
// removed before whitespace is collapsed, so a second pass is a no-op.
// Token-level matching only; extractors that rely on line structure or
// punctuation must work on the original text.
func Normalize(text string) string {
	text = nonWordRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
