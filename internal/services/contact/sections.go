// File: internal/services/contact/sections.go
package contact

import (
	"strings"
	"unicode"
)

// Section-scanning helpers. A section starts at a matching header line and
// runs to the next blank line or the next ALL-CAPS header line. These are
// pure functions over line-split text so they stay testable without real
// documents.

// findSection returns the [start, end) line range of the first section whose
// header matches one of the given variants, or (-1, -1) when none matches.
// The header line itself is excluded from the range.
func findSection(lines []string, headers []string) (int, int) {
	for i, line := range lines {
		if !matchesHeader(line, headers) {
			continue
		}
		return i + 1, sectionEnd(lines, i+1)
	}
	return -1, -1
}

// sectionEnd scans forward from start for the section boundary: a blank line
// or an ALL-CAPS header line.
func sectionEnd(lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || isAllCapsHeader(trimmed) {
			return i
		}
	}
	return len(lines)
}

// matchesHeader reports whether line is a header for one of the variants,
// compared case-insensitively with trailing colons ignored.
func matchesHeader(line string, headers []string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(line))
	normalized = strings.TrimSuffix(normalized, ":")
	for _, h := range headers {
		if normalized == h {
			return true
		}
	}
	return false
}

// isAllCapsHeader reports whether a trimmed, non-empty line looks like a
// section header: it contains letters and none of them are lowercase.
// Lines with label-style content ("Phone: ...") don't qualify.
func isAllCapsHeader(line string) bool {
	if len(line) > 60 {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
