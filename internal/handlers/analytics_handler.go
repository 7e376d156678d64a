// File: internal/handlers/analytics_handler.go
package handlers

import (
	"net/http"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/middleware"
	"github.com/bizchat-labs/bizchat/internal/repository/conversation"
	"github.com/bizchat-labs/bizchat/internal/repository/message"
)

// AnalyticsHandler serves the owner's conversation analytics view.
type AnalyticsHandler struct {
	Conversations conversation.ConversationRepository
	Messages      message.MessageRepository
}

func NewAnalyticsHandler(
	conversations conversation.ConversationRepository,
	messages message.MessageRepository,
) *AnalyticsHandler {
	return &AnalyticsHandler{Conversations: conversations, Messages: messages}
}

// analyticsReport aggregates message traffic by intent and sentiment.
type analyticsReport struct {
	Conversations     int64            `json:"conversations"`
	Messages          int              `json:"messages"`
	VisitorMessages   int              `json:"visitor_messages"`
	AssistantMessages int              `json:"assistant_messages"`
	Intents           map[string]int   `json:"intents"`
	Sentiments        map[string]int   `json:"sentiments"`
	RecentQuestions   []recentQuestion `json:"recent_questions"`
}

type recentQuestion struct {
	Content   string `json:"content"`
	Intent    string `json:"intent"`
	Sentiment string `json:"sentiment"`
}

const recentQuestionLimit = 20

// GetAnalytics aggregates stored messages for the owner's business.
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	convCount, err := h.Conversations.CountByBusinessID(r.Context(), businessID)
	if err != nil {
		writeError(w, "Could not compute analytics", http.StatusInternalServerError)
		return
	}
	messages, err := h.Messages.FindByBusinessID(r.Context(), businessID)
	if err != nil {
		writeError(w, "Could not compute analytics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, buildReport(convCount, messages))
}

func buildReport(convCount int64, messages []domain.Message) analyticsReport {
	report := analyticsReport{
		Conversations:   convCount,
		Messages:        len(messages),
		Intents:         make(map[string]int),
		Sentiments:      make(map[string]int),
		RecentQuestions: []recentQuestion{},
	}

	for _, m := range messages {
		if m.Role != domain.MessageRoleUser {
			report.AssistantMessages++
			continue
		}
		report.VisitorMessages++
		if m.Intent != "" {
			report.Intents[m.Intent]++
		}
		if m.Sentiment != "" {
			report.Sentiments[m.Sentiment]++
		}
	}

	// Messages arrive in chronological order; walk from the tail for the
	// latest visitor questions.
	for i := len(messages) - 1; i >= 0 && len(report.RecentQuestions) < recentQuestionLimit; i-- {
		if messages[i].Role != domain.MessageRoleUser {
			continue
		}
		report.RecentQuestions = append(report.RecentQuestions, recentQuestion{
			Content:   messages[i].Content,
			Intent:    messages[i].Intent,
			Sentiment: messages[i].Sentiment,
		})
	}

	return report
}
