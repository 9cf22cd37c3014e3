package rules

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`[\s\p{Z}]+`)

// Normalize replaces non-breaking spaces with ordinary spaces, collapses
// whitespace runs (newlines and tabs included) to a single space, and trims.
// Idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
