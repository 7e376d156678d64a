// File: internal/services/chunker/chunker_test.go
package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEmptyInput(t *testing.T) {
	assert.Nil(t, Split("", DefaultMaxLength, DefaultOverlap))
}

func TestSplitShortTextReturnsSingleChunk(t *testing.T) {
	text := "A short paragraph that fits in one chunk."
	got := Split(text, DefaultMaxLength, DefaultOverlap)

	require.Len(t, got, 1)
	assert.Equal(t, text, got[0])
}

func TestSplitTextExactlyAtLimit(t *testing.T) {
	text := strings.Repeat("a", 100)
	got := Split(text, 100, 20)

	require.Len(t, got, 1)
	assert.Equal(t, text, got[0])
}

func TestSplitRespectsMaxLength(t *testing.T) {
	text := strings.Repeat("word and more text. ", 100)
	got := Split(text, 100, 20)

	require.Greater(t, len(got), 1)
	for i, chunk := range got {
		assert.LessOrEqual(t, len(chunk), 100, "chunk %d too long", i)
		assert.NotEmpty(t, chunk)
	}
}

func TestSplitPrefersSentenceBoundaries(t *testing.T) {
	sentence := "This is a sentence about the business. "
	text := strings.Repeat(sentence, 10)
	got := Split(text, 100, 0)

	require.Greater(t, len(got), 1)
	// Every chunk except the last should end at a sentence boundary.
	for _, chunk := range got[:len(got)-1] {
		assert.True(t, strings.HasSuffix(chunk, ". "),
			"chunk %q does not end at a sentence break", chunk)
	}
}

func TestSplitPrefersParagraphBreaks(t *testing.T) {
	para := strings.Repeat("x", 70)
	text := para + "\n\n" + para + "\n\n" + para
	got := Split(text, 100, 10)

	require.Greater(t, len(got), 1)
	assert.True(t, strings.HasSuffix(got[0], "\n\n"))
}

func TestSplitOverlapCarriesSharedText(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta. ", 50)
	overlap := 20
	got := Split(text, 100, overlap)

	require.Greater(t, len(got), 1)
	for i := 1; i < len(got); i++ {
		tail := got[i-1]
		if len(tail) > overlap {
			tail = tail[len(tail)-overlap:]
		}
		assert.True(t, strings.HasPrefix(got[i], tail),
			"chunk %d does not start with the previous chunk's tail", i)
	}
}

func TestSplitCoversWholeText(t *testing.T) {
	text := strings.Repeat("some meaningful content here. ", 60)
	got := Split(text, 120, 30)

	// Concatenating with overlap removed must reconstruct the original.
	last := got[len(got)-1]
	assert.True(t, strings.HasSuffix(text, last))
	assert.True(t, strings.HasPrefix(text, got[0]))

	covered := 0
	for _, chunk := range got {
		idx := strings.Index(text[covered:], chunk)
		require.GreaterOrEqual(t, idx, 0)
		covered += idx
	}
}

func TestSplitTerminatesWithoutSeparators(t *testing.T) {
	// Unbroken text forces naive cuts; the clamp keeps the loop advancing
	// even when the overlap exceeds a chunk's advance.
	text := strings.Repeat("a", 500)
	got := Split(text, 50, 60)

	require.NotEmpty(t, got)
	assert.Equal(t, strings.Repeat("a", 50), got[0])
	total := 0
	for _, chunk := range got {
		total += len(chunk)
	}
	assert.GreaterOrEqual(t, total, len(text))
}

func TestSplitRejectsEarlyBreaks(t *testing.T) {
	// The only separator sits well before the midpoint, so the cut falls at
	// the naive boundary instead of producing a tiny chunk.
	text := "ab. " + strings.Repeat("c", 200)
	got := Split(text, 100, 0)

	require.Greater(t, len(got), 1)
	assert.Equal(t, 100, len(got[0]))
}

func TestSplitKeepsMultibyteRunesIntact(t *testing.T) {
	// Currency-heavy text with no separators forces naive cuts; every cut
	// must still land on a rune boundary.
	text := strings.Repeat("₹", 100)
	got := Split(text, 50, 10)

	require.Greater(t, len(got), 1)
	for i, chunk := range got {
		assert.True(t, utf8.ValidString(chunk), "chunk %d is invalid UTF-8", i)
		assert.True(t, strings.HasPrefix(chunk, "₹"), "chunk %d opens mid-rune", i)
	}
}

func TestSplitMultibyteMixedText(t *testing.T) {
	text := strings.Repeat("Dosa ₹120, Idli ₹80 और कॉफ़ी ₹60. ", 30)
	got := Split(text, 90, 15)

	require.Greater(t, len(got), 1)
	for i, chunk := range got {
		assert.True(t, utf8.ValidString(chunk), "chunk %d is invalid UTF-8", i)
		assert.LessOrEqual(t, len(chunk), 90)
	}
	assert.True(t, strings.HasSuffix(text, got[len(got)-1]))
}

func TestSplitRuneWiderThanBudget(t *testing.T) {
	// A 3-byte rune with a 2-byte budget is taken whole instead of stalling
	// or emitting partial bytes.
	text := strings.Repeat("₹", 4)
	got := Split(text, 2, 0)

	require.NotEmpty(t, got)
	for i, chunk := range got {
		assert.True(t, utf8.ValidString(chunk), "chunk %d is invalid UTF-8", i)
		assert.NotEmpty(t, chunk)
	}
	assert.Equal(t, text, strings.Join(got, ""))
}

func TestSplitDefaultsForInvalidParams(t *testing.T) {
	text := strings.Repeat("content here. ", 20)
	got := Split(text, 0, -5)

	require.Len(t, got, 1)
	assert.Equal(t, text, got[0])
}
