// File: internal/handlers/upload_handler.go
package handlers

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bizchat-labs/bizchat/internal/middleware"
	"github.com/bizchat-labs/bizchat/internal/services/ingest"
)

const (
	maxUploadBytes = 20 << 20 // whole request
	maxFileBytes   = 10 << 20 // single file
)

// UploadHandler accepts owner document uploads and runs them through the
// ingestion pipeline.
type UploadHandler struct {
	Ingest *ingest.Service
}

func NewUploadHandler(ingestService *ingest.Service) *UploadHandler {
	return &UploadHandler{Ingest: ingestService}
}

// UploadDocuments handles multipart uploads under the "files" field. Each
// file is staged to a temp path, ingested, and reported in a per-file
// summary; one bad file never blocks the rest.
func (h *UploadHandler) UploadDocuments(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, "Upload too large or malformed", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeError(w, "No files provided under the 'files' field", http.StatusBadRequest)
		return
	}

	var uploads []ingest.FileUpload
	var staged []string
	defer func() {
		for _, path := range staged {
			os.Remove(path)
		}
	}()

	for _, header := range fileHeaders {
		if header.Size > maxFileBytes {
			writeError(w, "File "+header.Filename+" exceeds the 10MB limit", http.StatusRequestEntityTooLarge)
			return
		}
		path, err := stageFile(header)
		if err != nil {
			log.Printf("Upload staging error for %q: %v", header.Filename, err)
			writeError(w, "Could not save uploaded file", http.StatusInternalServerError)
			return
		}
		staged = append(staged, path)
		uploads = append(uploads, ingest.FileUpload{
			Path:         path,
			Extension:    strings.TrimPrefix(filepath.Ext(header.Filename), "."),
			OriginalName: header.Filename,
			SizeBytes:    header.Size,
		})
	}

	summaries := h.Ingest.IngestFiles(r.Context(), businessID, uploads)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"files": summaries,
	})
}

// stageFile copies one multipart part to a temp file on disk.
func stageFile(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "bizchat-upload-*")
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
