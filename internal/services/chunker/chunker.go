// File: internal/services/chunker/chunker.go
package chunker

import (
	"strings"
	"unicode/utf8"
)

// Defaults tuned for embedding-sized chunks with enough overlap that a fact
// split across a boundary survives in at least one chunk.
const (
	DefaultMaxLength = 1000
	DefaultOverlap   = 150
)

// Break separators in priority order: paragraph break, sentence terminators,
// then a bare newline.
var breakSeparators = []string{"\n\n", ". ", "! ", "? ", "\n"}

// Split cuts text into overlapping segments of at most maxLength characters,
// preferring paragraph and sentence boundaries. Returns nil for empty input
// and the whole text as a single element when it already fits.
func Split(text string, maxLength, overlap int) []string {
	if text == "" {
		return nil
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if overlap < 0 {
		overlap = 0
	}
	if len(text) <= maxLength {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + maxLength
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		cut := breakPoint(text, start, end)
		chunks = append(chunks, text[start:cut])

		// Overlap the next window, clamped so the loop always advances.
		next := cut - overlap
		if next <= start {
			next = start + 1
		}
		// The overlap step is a byte offset; keep the next chunk from
		// opening mid-rune.
		for next < len(text) && !utf8.RuneStart(text[next]) {
			next++
		}
		start = next
	}
	return chunks
}

// breakPoint searches backward from end for the nearest natural break. A
// break before the slice midpoint is rejected to avoid degenerate tiny
// chunks; the naive end boundary, backed off to a rune start, is used
// instead so multibyte text never splits mid-rune.
func breakPoint(text string, start, end int) int {
	mid := start + (end-start)/2
	for _, sep := range breakSeparators {
		idx := strings.LastIndex(text[start:end], sep)
		if idx < 0 {
			continue
		}
		cut := start + idx + len(sep)
		if cut <= mid {
			continue
		}
		return cut
	}

	for end > start && !utf8.RuneStart(text[end]) {
		end--
	}
	if end <= start {
		// A rune wider than the budget; take it whole rather than stall.
		end = start + 1
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end++
		}
	}
	return end
}
