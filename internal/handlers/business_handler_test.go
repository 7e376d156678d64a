// File: internal/handlers/business_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/middleware"
)

type stubDocumentRepo struct {
	docs    map[uint]*domain.Document
	deleted []uint
}

func (s *stubDocumentRepo) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	return doc, nil
}

func (s *stubDocumentRepo) FindByID(ctx context.Context, id uint) (*domain.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return doc, nil
}

func (s *stubDocumentRepo) FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range s.docs {
		if doc.BusinessID == businessID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (s *stubDocumentRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := s.docs[id]; !ok {
		return errors.New("document not found")
	}
	delete(s.docs, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubDocumentRepo) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	return nil
}

type stubChunkRepo struct {
	counts         map[uint]int64
	deletedDocIDs  []uint
	countErr       error
	deleteByDocErr error
}

func (s *stubChunkRepo) Create(ctx context.Context, chunk *domain.Chunk) (*domain.Chunk, error) {
	return chunk, nil
}

func (s *stubChunkRepo) FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Chunk, error) {
	return nil, nil
}

func (s *stubChunkRepo) CountByDocumentID(ctx context.Context, documentID uint) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.counts[documentID], nil
}

func (s *stubChunkRepo) DeleteByDocumentID(ctx context.Context, documentID uint) error {
	if s.deleteByDocErr != nil {
		return s.deleteByDocErr
	}
	s.deletedDocIDs = append(s.deletedDocIDs, documentID)
	return nil
}

func (s *stubChunkRepo) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	return nil
}

func authedRequest(method, target string, businessID uint) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), middleware.BusinessIDKey, businessID)
	return req.WithContext(ctx)
}

func TestListDocumentsIncludesChunkCounts(t *testing.T) {
	docs := &stubDocumentRepo{docs: map[uint]*domain.Document{
		3: {ID: 3, BusinessID: 1, Filename: "menu.txt"},
	}}
	chunks := &stubChunkRepo{counts: map[uint]int64{3: 7}}
	h := &BusinessHandler{Documents: docs, Chunks: chunks}

	rec := httptest.NewRecorder()
	h.ListDocuments(rec, authedRequest(http.MethodGet, "/api/business/documents", 1))

	require.Equal(t, http.StatusOK, rec.Code)
	var listings []documentListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "menu.txt", listings[0].Document.Filename)
	assert.Equal(t, int64(7), listings[0].ChunkCount)
}

func TestDeleteDocumentRemovesChunksFirst(t *testing.T) {
	docs := &stubDocumentRepo{docs: map[uint]*domain.Document{
		5: {ID: 5, BusinessID: 2, Filename: "faq.txt"},
	}}
	chunks := &stubChunkRepo{}
	h := &BusinessHandler{Documents: docs, Chunks: chunks}

	req := authedRequest(http.MethodDelete, "/api/business/documents/5", 2)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.DeleteDocument(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uint{5}, chunks.deletedDocIDs)
	assert.Equal(t, []uint{5}, docs.deleted)
}

func TestDeleteDocumentRejectsForeignOwner(t *testing.T) {
	docs := &stubDocumentRepo{docs: map[uint]*domain.Document{
		5: {ID: 5, BusinessID: 2, Filename: "faq.txt"},
	}}
	chunks := &stubChunkRepo{}
	h := &BusinessHandler{Documents: docs, Chunks: chunks}

	req := authedRequest(http.MethodDelete, "/api/business/documents/5", 9)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.DeleteDocument(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, chunks.deletedDocIDs)
	assert.Contains(t, docs.docs, uint(5))
}

func TestDeleteDocumentKeepsRowWhenChunkDeleteFails(t *testing.T) {
	docs := &stubDocumentRepo{docs: map[uint]*domain.Document{
		5: {ID: 5, BusinessID: 2, Filename: "faq.txt"},
	}}
	chunks := &stubChunkRepo{deleteByDocErr: errors.New("db locked")}
	h := &BusinessHandler{Documents: docs, Chunks: chunks}

	req := authedRequest(http.MethodDelete, "/api/business/documents/5", 2)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.DeleteDocument(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, docs.docs, uint(5))
}
