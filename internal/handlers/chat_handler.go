// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/repository/business"
	"github.com/bizchat-labs/bizchat/internal/repository/conversation"
	"github.com/bizchat-labs/bizchat/internal/repository/message"
	"github.com/bizchat-labs/bizchat/internal/services/ai"
	"github.com/bizchat-labs/bizchat/internal/services/reply"
	"github.com/bizchat-labs/bizchat/internal/services/retrieval"
	"github.com/bizchat-labs/bizchat/internal/services/tagger"
)

const maxMessageLength = 2000

// ChatHandler serves the public, token-addressed visitor chat endpoint.
type ChatHandler struct {
	Businesses    business.BusinessRepository
	Conversations conversation.ConversationRepository
	Messages      message.MessageRepository
	Retrieval     *retrieval.Service
	Reply         *reply.Service
	Logger        ai.Logger
}

func NewChatHandler(
	businesses business.BusinessRepository,
	conversations conversation.ConversationRepository,
	messages message.MessageRepository,
	retrievalService *retrieval.Service,
	replyService *reply.Service,
	logger ai.Logger,
) *ChatHandler {
	return &ChatHandler{
		Businesses:    businesses,
		Conversations: conversations,
		Messages:      messages,
		Retrieval:     retrievalService,
		Reply:         replyService,
		Logger:        logger,
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	VisitorID string `json:"visitor_id"`
}

// HandleMessage answers one visitor message for the business behind the
// token. The visitor ID keys the conversation thread; a missing one is
// minted and returned so the widget can persist it.
func (h *ChatHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	biz, err := h.Businesses.FindByChatToken(r.Context(), token)
	if err != nil {
		writeError(w, "Unknown chat link", http.StatusNotFound)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}
	if len(req.Message) > maxMessageLength {
		writeError(w, "Message is too long", http.StatusBadRequest)
		return
	}
	if req.VisitorID == "" {
		req.VisitorID = uuid.NewString()
	}

	ctx := r.Context()
	conv, err := h.Conversations.FindByBusinessAndVisitor(ctx, biz.ID, req.VisitorID)
	if errors.Is(err, conversation.ErrConversationNotFound) {
		conv, err = h.Conversations.Create(ctx, &domain.Conversation{
			BusinessID: biz.ID,
			VisitorID:  req.VisitorID,
		})
	}
	if err != nil {
		writeError(w, "Could not open conversation", http.StatusInternalServerError)
		return
	}

	history, err := h.Messages.FindRecentByConversationID(ctx, conv.ID, 10)
	if err != nil {
		h.Logger.Warn("history fetch failed, continuing without it",
			"conversation_id", conv.ID, "error", err)
		history = nil
	}

	userMsg := &domain.Message{
		ConversationID: conv.ID,
		Role:           domain.MessageRoleUser,
		Content:        req.Message,
		Intent:         tagger.DetectIntent(req.Message),
		Sentiment:      tagger.DetectSentiment(req.Message),
	}
	if _, err := h.Messages.Create(ctx, userMsg); err != nil {
		writeError(w, "Could not record message", http.StatusInternalServerError)
		return
	}

	chunks, err := h.Retrieval.Retrieve(ctx, biz.ID, req.Message)
	if err != nil {
		h.Logger.Error("retrieval failed, answering from business record only",
			"business_id", biz.ID, "error", err)
		chunks = nil
	}

	answer := h.Reply.Respond(ctx, biz, chunks, history, req.Message)

	if _, err := h.Messages.Create(ctx, &domain.Message{
		ConversationID: conv.ID,
		Role:           domain.MessageRoleAssistant,
		Content:        answer,
	}); err != nil {
		h.Logger.Error("could not record assistant reply",
			"conversation_id", conv.ID, "error", err)
	}
	if err := h.Conversations.TouchUpdatedAt(ctx, conv.ID); err != nil {
		h.Logger.Warn("could not touch conversation", "conversation_id", conv.ID, "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reply":           answer,
		"reply_html":      RenderMarkdown(answer),
		"visitor_id":      req.VisitorID,
		"conversation_id": conv.ID,
	})
}

// GetHistory returns the visitor's prior turns for the widget to replay.
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	biz, err := h.Businesses.FindByChatToken(r.Context(), token)
	if err != nil {
		writeError(w, "Unknown chat link", http.StatusNotFound)
		return
	}

	visitorID := r.URL.Query().Get("visitor_id")
	if visitorID == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"messages": []domain.Message{}})
		return
	}

	conv, err := h.Conversations.FindByBusinessAndVisitor(r.Context(), biz.ID, visitorID)
	if errors.Is(err, conversation.ErrConversationNotFound) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"messages": []domain.Message{}})
		return
	}
	if err != nil {
		writeError(w, "Could not retrieve history", http.StatusInternalServerError)
		return
	}

	messages, err := h.Messages.FindRecentByConversationID(r.Context(), conv.ID, 50)
	if err != nil {
		writeError(w, "Could not retrieve history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
