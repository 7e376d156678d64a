// File: internal/handlers/business_handler.go
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/middleware"
	"github.com/bizchat-labs/bizchat/internal/repository/business"
	"github.com/bizchat-labs/bizchat/internal/repository/chunk"
	"github.com/bizchat-labs/bizchat/internal/repository/conversation"
	"github.com/bizchat-labs/bizchat/internal/repository/document"
	"github.com/bizchat-labs/bizchat/internal/repository/message"
)

// BusinessHandler serves the authenticated owner's business resource.
type BusinessHandler struct {
	Businesses    business.BusinessRepository
	Documents     document.DocumentRepository
	Chunks        chunk.ChunkRepository
	Conversations conversation.ConversationRepository
	Messages      message.MessageRepository
}

func NewBusinessHandler(
	businesses business.BusinessRepository,
	documents document.DocumentRepository,
	chunks chunk.ChunkRepository,
	conversations conversation.ConversationRepository,
	messages message.MessageRepository,
) *BusinessHandler {
	return &BusinessHandler{
		Businesses:    businesses,
		Documents:     documents,
		Chunks:        chunks,
		Conversations: conversations,
		Messages:      messages,
	}
}

// GetBusiness returns the owner's business record.
func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	biz, err := h.Businesses.FindByID(r.Context(), businessID)
	if err != nil {
		writeError(w, "Business not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, biz)
}

// documentListing pairs a document with its stored chunk count so the owner
// dashboard can show how much of each upload is actually retrievable.
type documentListing struct {
	Document   domain.Document `json:"document"`
	ChunkCount int64           `json:"chunk_count"`
}

// ListDocuments returns the owner's processed documents with chunk counts.
func (h *BusinessHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	docs, err := h.Documents.FindByBusinessID(r.Context(), businessID)
	if err != nil {
		writeError(w, "Could not retrieve documents", http.StatusInternalServerError)
		return
	}

	listings := make([]documentListing, 0, len(docs))
	for _, doc := range docs {
		count, err := h.Chunks.CountByDocumentID(r.Context(), doc.ID)
		if err != nil {
			log.Printf("List documents: count for document %d: %v", doc.ID, err)
			count = 0
		}
		listings = append(listings, documentListing{Document: doc, ChunkCount: count})
	}
	writeJSON(w, http.StatusOK, listings)
}

// DeleteDocument removes one document and its chunks. Chunks go first so a
// failure never strands them without an owner row.
func (h *BusinessHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	docID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, "Invalid document ID", http.StatusBadRequest)
		return
	}

	doc, err := h.Documents.FindByID(r.Context(), uint(docID))
	if err != nil {
		writeError(w, "Document not found", http.StatusNotFound)
		return
	}
	if doc.BusinessID != businessID {
		writeError(w, "Document not found", http.StatusNotFound)
		return
	}

	if err := h.Chunks.DeleteByDocumentID(r.Context(), doc.ID); err != nil {
		log.Printf("Delete document %d: chunks: %v", doc.ID, err)
		writeError(w, "Could not delete document data", http.StatusInternalServerError)
		return
	}
	if err := h.Documents.Delete(r.Context(), doc.ID); err != nil {
		log.Printf("Delete document %d: %v", doc.ID, err)
		writeError(w, "Could not delete document", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteBusiness removes the business and everything hanging off it. Child
// tables go first so a failure never strands chunks without an owner row.
func (h *BusinessHandler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	if err := h.Chunks.DeleteByBusinessID(ctx, businessID); err != nil {
		log.Printf("Delete business %d: chunks: %v", businessID, err)
		writeError(w, "Could not delete business data", http.StatusInternalServerError)
		return
	}
	if err := h.Documents.DeleteByBusinessID(ctx, businessID); err != nil {
		log.Printf("Delete business %d: documents: %v", businessID, err)
		writeError(w, "Could not delete business data", http.StatusInternalServerError)
		return
	}
	if err := h.Messages.DeleteByBusinessID(ctx, businessID); err != nil {
		log.Printf("Delete business %d: messages: %v", businessID, err)
		writeError(w, "Could not delete business data", http.StatusInternalServerError)
		return
	}
	if err := h.Conversations.DeleteByBusinessID(ctx, businessID); err != nil {
		log.Printf("Delete business %d: conversations: %v", businessID, err)
		writeError(w, "Could not delete business data", http.StatusInternalServerError)
		return
	}
	if err := h.Businesses.Delete(ctx, businessID); err != nil {
		log.Printf("Delete business %d: %v", businessID, err)
		writeError(w, "Could not delete business", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
