// File: internal/handlers/handlers_test.go
package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

func TestRenderMarkdown(t *testing.T) {
	got := RenderMarkdown("Our **hours** are 9-5.")
	assert.Contains(t, got, "<strong>hours</strong>")
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	got := RenderMarkdown(`Click <script>alert("x")</script> here`)
	assert.NotContains(t, got, "<script>")
}

func TestBuildReportCountsByRoleIntentSentiment(t *testing.T) {
	messages := []domain.Message{
		{Role: domain.MessageRoleUser, Content: "how much?", Intent: "pricing", Sentiment: "neutral"},
		{Role: domain.MessageRoleAssistant, Content: "500 rupees"},
		{Role: domain.MessageRoleUser, Content: "great, book me in", Intent: "booking", Sentiment: "positive"},
		{Role: domain.MessageRoleAssistant, Content: "done"},
		{Role: domain.MessageRoleUser, Content: "what's the price for two?", Intent: "pricing", Sentiment: "neutral"},
	}

	report := buildReport(2, messages)

	assert.Equal(t, int64(2), report.Conversations)
	assert.Equal(t, 5, report.Messages)
	assert.Equal(t, 3, report.VisitorMessages)
	assert.Equal(t, 2, report.AssistantMessages)
	assert.Equal(t, map[string]int{"pricing": 2, "booking": 1}, report.Intents)
	assert.Equal(t, map[string]int{"neutral": 2, "positive": 1}, report.Sentiments)
}

func TestBuildReportRecentQuestionsNewestFirst(t *testing.T) {
	var messages []domain.Message
	for i := 0; i < 25; i++ {
		messages = append(messages, domain.Message{
			Role:    domain.MessageRoleUser,
			Content: string(rune('a' + i%26)),
			Intent:  "inquiry",
		})
	}

	report := buildReport(1, messages)
	require.Len(t, report.RecentQuestions, recentQuestionLimit)
	// Newest message leads the list.
	assert.Equal(t, messages[24].Content, report.RecentQuestions[0].Content)
}

func TestBuildReportEmpty(t *testing.T) {
	report := buildReport(0, nil)

	assert.Zero(t, report.Messages)
	assert.Empty(t, report.Intents)
	assert.Empty(t, report.Sentiments)
	assert.Empty(t, report.RecentQuestions)
}
