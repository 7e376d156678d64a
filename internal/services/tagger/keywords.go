// File: internal/services/tagger/keywords.go
package tagger

import (
	"regexp"
	"sort"
	"strings"
)

var punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// Tokens of this length or shorter carry no retrieval signal.
const minTokenLength = 4

var stopwords = map[string]bool{
	"this": true, "that": true, "these": true, "those": true, "with": true,
	"from": true, "have": true, "been": true, "were": true, "will": true,
	"would": true, "could": true, "should": true, "about": true, "after": true,
	"before": true, "between": true, "into": true, "through": true, "during": true,
	"above": true, "below": true, "under": true, "over": true, "again": true,
	"further": true, "then": true, "once": true, "here": true, "there": true,
	"when": true, "where": true, "which": true, "while": true, "what": true,
	"their": true, "them": true, "they": true, "your": true, "yours": true,
	"also": true, "more": true, "most": true, "other": true, "some": true,
	"such": true, "only": true, "same": true, "than": true, "very": true,
	"just": true, "because": true, "being": true, "does": true, "each": true,
}

// ExtractKeywords returns the top-N tokens by frequency as a comma-joined
// string. Tokens are lowercased, stripped of punctuation, and filtered by
// length and the stopword list. Ties break by first-seen order.
func ExtractKeywords(text string, topN int) string {
	if text == "" || topN <= 0 {
		return ""
	}

	cleaned := punctuation.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minTokenLength || stopwords[token] {
			continue
		}
		if _, ok := counts[token]; !ok {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}
	if len(counts) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return firstSeen[tokens[i]] < firstSeen[tokens[j]]
	})

	if len(tokens) > topN {
		tokens = tokens[:topN]
	}
	return strings.Join(tokens, ", ")
}
