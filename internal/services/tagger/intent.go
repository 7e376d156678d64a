// File: internal/services/tagger/intent.go
package tagger

import "strings"

// IntentInquiry is the fallback when no intent keywords match.
const IntentInquiry = "inquiry"

type intentRule struct {
	Name     string
	Keywords []string
}

// Fixed declaration order; ties break toward the earlier rule.
var intentRules = []intentRule{
	{"greeting", []string{"hello", "hi there", "hey", "good morning", "good afternoon", "good evening"}},
	{"hours", []string{"hour", "open", "close", "timing", "when are you"}},
	{"pricing", []string{"price", "cost", "fee", "charge", "how much"}},
	{"booking", []string{"book", "appointment", "reserve", "reservation", "schedule"}},
	{"contact", []string{"contact", "phone", "call", "email", "whatsapp", "reach"}},
	{"location", []string{"where", "address", "location", "directions", "map"}},
	{"complaint", []string{"complaint", "refund", "broken", "terrible", "not working", "disappointed"}},
	{"thanks", []string{"thank", "thanks", "appreciate"}},
	{"goodbye", []string{"bye", "goodbye", "see you"}},
}

// DetectIntent classifies a user message by keyword matches, falling back to
// "inquiry". A heuristic, not NLU: a keyword hit per rule counts one point
// and the strictly highest rule wins.
func DetectIntent(message string) string {
	lower := strings.ToLower(message)

	best := IntentInquiry
	bestScore := 0
	for _, rule := range intentRules {
		score := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = rule.Name
		}
	}
	return best
}

var positiveWords = []string{
	"great", "good", "excellent", "amazing", "love", "wonderful", "perfect",
	"helpful", "awesome", "fantastic", "best",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "worst", "hate", "disappointed",
	"useless", "broken", "poor", "slow",
}

// DetectSentiment returns "positive", "negative", or "neutral" by comparing
// valence keyword counts.
func DetectSentiment(message string) string {
	lower := strings.ToLower(message)

	positive, negative := 0, 0
	for _, w := range positiveWords {
		positive += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		negative += strings.Count(lower, w)
	}

	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}
