// File: internal/services/extract/cleaner.go
package extract

import (
	"regexp"
	"strings"
)

var (
	horizontalWhitespace = regexp.MustCompile(`[ \t]+`)
	trailingLineSpace    = regexp.MustCompile(`(?m)[ \t]+$`)
	excessBlankLines     = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes extractor output: line endings become \n, runs of
// horizontal whitespace collapse to one space, 3+ blank lines collapse to 2,
// and the result is trimmed.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalWhitespace.ReplaceAllString(text, " ")
	text = trailingLineSpace.ReplaceAllString(text, "")
	text = excessBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
