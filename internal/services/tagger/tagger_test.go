// File: internal/services/tagger/tagger_test.go
package tagger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywordsByFrequency(t *testing.T) {
	text := "bakery bakery bakery bread bread cakes"
	got := ExtractKeywords(text, 3)
	assert.Equal(t, "bakery, bread, cakes", got)
}

func TestExtractKeywordsTieBreaksFirstSeen(t *testing.T) {
	text := "zebra apple zebra apple mango"
	got := ExtractKeywords(text, 2)
	// Equal counts; zebra appeared first.
	assert.Equal(t, "zebra, apple", got)
}

func TestExtractKeywordsFiltersShortAndStopwords(t *testing.T) {
	text := "this that with from the cat dog run bakery"
	got := ExtractKeywords(text, 10)
	assert.Equal(t, "bakery", got)
}

func TestExtractKeywordsStripsPunctuationAndCase(t *testing.T) {
	got := ExtractKeywords("Bakery! BAKERY, bakery.", 5)
	assert.Equal(t, "bakery", got)
}

func TestExtractKeywordsLimitsToTopN(t *testing.T) {
	text := "alpha alpha alpha beta beta gamma gamma delta epsilon"
	got := ExtractKeywords(text, 2)
	assert.Equal(t, "alpha, beta", got)
}

func TestExtractKeywordsEmptyCases(t *testing.T) {
	assert.Equal(t, "", ExtractKeywords("", 5))
	assert.Equal(t, "", ExtractKeywords("a an it", 5))
	assert.Equal(t, "", ExtractKeywords("real words here", 0))
}

func TestCategorizeByKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		filename string
		want     string
	}{
		{
			"hours document",
			"We are open on weekdays. Opening hours and timings below. Closed on holiday.",
			"hours.txt",
			"hours",
		},
		{
			"menu document",
			"Our menu features every dish and cuisine: appetizer, dessert, beverage for lunch and dinner.",
			"menu.txt",
			"menu",
		},
		{
			"booking document",
			"Book an appointment or reservation. Pick a slot in the schedule.",
			"bookings.txt",
			"booking",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.text, tt.filename))
		})
	}
}

func TestCategorizeCurrencyBoostsPricing(t *testing.T) {
	// A lone "fee" mention would lose to richer categories, but the currency
	// symbol pushes pricing ahead.
	text := "The consultation fee is ₹500."
	assert.Equal(t, "pricing", Categorize(text, "info.txt"))
}

func TestCategorizeContactSignalsBoost(t *testing.T) {
	text := "You can reach our team at hello@example.com or +919876543210."
	assert.Equal(t, "contact", Categorize(text, "info.txt"))
}

func TestCategorizeFilenameBonus(t *testing.T) {
	text := "Plain descriptive paragraph mentioning delivery once."
	assert.Equal(t, "delivery", Categorize(text, "delivery.txt"))
}

func TestCategorizeFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, CategoryGeneral, Categorize("Nothing matching any rule vocabulary.", "notes.txt"))
	assert.Equal(t, CategoryGeneral, Categorize("", ""))
}

func TestCategorizeTieBreaksByDeclarationOrder(t *testing.T) {
	// "open" scores hours (weight 3) and nothing else; a tie between two
	// single-keyword texts must always resolve the same way.
	first := Categorize("open open", "a.txt")
	second := Categorize("open open", "a.txt")
	assert.Equal(t, first, second)
	assert.Equal(t, "hours", first)
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"hello there", "greeting"},
		{"what are your opening hours?", "hours"},
		{"how much does a haircut cost?", "pricing"},
		{"I want to book an appointment", "booking"},
		{"can I call you on whatsapp?", "contact"},
		{"where is your address?", "location"},
		{"I want a refund, this is broken", "complaint"},
		{"thanks a lot!", "thanks"},
		{"bye for now", "goodbye"},
		{"tell me about your products", IntentInquiry},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.message))
		})
	}
}

func TestDetectSentiment(t *testing.T) {
	assert.Equal(t, "positive", DetectSentiment("Great service, amazing staff!"))
	assert.Equal(t, "negative", DetectSentiment("Terrible experience, the worst."))
	assert.Equal(t, "neutral", DetectSentiment("What time do you open?"))
	assert.Equal(t, "neutral", DetectSentiment("Good food but slow delivery."))
}

func TestDetectSentimentCaseInsensitive(t *testing.T) {
	assert.Equal(t, "positive", DetectSentiment("EXCELLENT!"))
}

func TestKeywordsOutputFormat(t *testing.T) {
	got := ExtractKeywords("alpha beta gamma", 3)
	parts := strings.Split(got, ", ")
	assert.Len(t, parts, 3)
}
