// File: internal/services/ingest/service.go
package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/repository/chunk"
	"github.com/bizchat-labs/bizchat/internal/repository/document"
	"github.com/bizchat-labs/bizchat/internal/services/chunker"
	"github.com/bizchat-labs/bizchat/internal/services/contact"
	"github.com/bizchat-labs/bizchat/internal/services/tagger"
)

// Extractor converts an uploaded file into normalized plain text.
type Extractor interface {
	Extract(path, extension, originalName string) (string, error)
}

// EmbeddingProvider creates a vector for one chunk of text.
type EmbeddingProvider interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Logger defines the logging interface used by the ingest service.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// FileUpload describes one uploaded file handed over by the HTTP layer,
// which has already enforced size/type limits.
type FileUpload struct {
	Path         string
	Extension    string
	OriginalName string
	SizeBytes    int64
}

// FileSummary reports the outcome of ingesting one file.
type FileSummary struct {
	Filename       string `json:"filename"`
	Category       string `json:"category,omitempty"`
	DocumentID     uint   `json:"document_id,omitempty"`
	ChunksTotal    int    `json:"chunks_total"`
	ChunksEmbedded int    `json:"chunks_embedded"`
	ChunksFailed   int    `json:"chunks_failed"`
	Failed         bool   `json:"failed"`
	Error          string `json:"error,omitempty"`
}

// Service runs the ingestion pipeline: extract, synthesize the contact card,
// persist the document, then chunk, tag, embed and persist each chunk.
type Service struct {
	config    *Config
	extractor Extractor
	embedder  EmbeddingProvider
	documents document.DocumentRepository
	chunks    chunk.ChunkRepository
	logger    Logger
}

func NewService(
	config *Config,
	extractor Extractor,
	embedder EmbeddingProvider,
	documents document.DocumentRepository,
	chunks chunk.ChunkRepository,
	logger Logger,
) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, &IngestError{Type: ErrTypeConfig, Message: err.Error()}
	}
	return &Service{
		config:    config,
		extractor: extractor,
		embedder:  embedder,
		documents: documents,
		chunks:    chunks,
		logger:    logger,
	}, nil
}

// IngestFiles processes files one at a time. A failing file is recorded in
// its summary and never aborts its siblings.
func (s *Service) IngestFiles(ctx context.Context, businessID uint, files []FileUpload) []FileSummary {
	summaries := make([]FileSummary, 0, len(files))
	for _, f := range files {
		summaries = append(summaries, s.ingestFile(ctx, businessID, f))
	}
	return summaries
}

func (s *Service) ingestFile(ctx context.Context, businessID uint, f FileUpload) FileSummary {
	summary := FileSummary{Filename: f.OriginalName}
	s.logger.Info("ingesting file", "business_id", businessID, "filename", f.OriginalName)

	text, err := s.extractor.Extract(f.Path, f.Extension, f.OriginalName)
	if err != nil {
		summary.Failed = true
		summary.Error = err.Error()
		return summary
	}

	// The contact card goes in before chunking so it lands in the first chunk.
	text = contact.AddContactCard(text)
	category := tagger.Categorize(text, f.OriginalName)
	summary.Category = category

	doc, err := s.documents.Create(ctx, &domain.Document{
		BusinessID: businessID,
		Filename:   f.OriginalName,
		FileType:   f.Extension,
		SizeBytes:  f.SizeBytes,
		Category:   category,
		Content:    text,
	})
	if err != nil {
		summary.Failed = true
		summary.Error = NewPersistenceError(f.OriginalName, "failed to save document", err).Error()
		return summary
	}
	summary.DocumentID = doc.ID

	pieces := chunker.Split(text, s.config.ChunkMaxLength, s.config.ChunkOverlap)
	if len(pieces) > s.config.MaxChunksPerFile {
		s.logger.Warn("chunk cap reached, truncating",
			"filename", f.OriginalName,
			"produced", len(pieces),
			"cap", s.config.MaxChunksPerFile)
		pieces = pieces[:s.config.MaxChunksPerFile]
	}
	summary.ChunksTotal = len(pieces)

	embedded, failed := s.embedAndStoreChunks(ctx, doc, pieces)
	summary.ChunksEmbedded = embedded
	summary.ChunksFailed = failed

	s.logger.Info("file ingested",
		"filename", f.OriginalName,
		"category", category,
		"chunks_total", summary.ChunksTotal,
		"chunks_embedded", embedded,
		"chunks_failed", failed)
	return summary
}

// chunkResult is the settled outcome for one chunk: either a ready-to-save
// record or the error that sank it. A failure never aborts the batch.
type chunkResult struct {
	ordinal int
	record  *domain.Chunk
	err     error
}

// embedAndStoreChunks embeds chunks in bounded parallel batches with a
// per-call timeout, pausing between batches for provider rate limits.
func (s *Service) embedAndStoreChunks(ctx context.Context, doc *domain.Document, pieces []string) (embedded, failed int) {
	for batchStart := 0; batchStart < len(pieces); batchStart += s.config.EmbedBatchSize {
		batchEnd := batchStart + s.config.EmbedBatchSize
		if batchEnd > len(pieces) {
			batchEnd = len(pieces)
		}

		results := make([]chunkResult, batchEnd-batchStart)
		var wg sync.WaitGroup
		for i := batchStart; i < batchEnd; i++ {
			wg.Add(1)
			go func(ordinal int, text string) {
				defer wg.Done()
				results[ordinal-batchStart] = s.embedChunk(ctx, doc, ordinal, text)
			}(i, pieces[i])
		}
		wg.Wait()

		for _, result := range results {
			if result.err != nil {
				failed++
				s.logger.Error("chunk failed",
					"document_id", doc.ID,
					"ordinal", result.ordinal,
					"error", result.err)
				continue
			}
			if _, err := s.chunks.Create(ctx, result.record); err != nil {
				failed++
				s.logger.Error("chunk save failed",
					"document_id", doc.ID,
					"ordinal", result.ordinal,
					"error", err)
				continue
			}
			embedded++
		}

		if batchEnd < len(pieces) && s.config.BatchDelay > 0 {
			time.Sleep(s.config.BatchDelay)
		}
	}
	return embedded, failed
}

func (s *Service) embedChunk(ctx context.Context, doc *domain.Document, ordinal int, text string) chunkResult {
	embedCtx, cancel := context.WithTimeout(ctx, s.config.EmbedTimeout)
	defer cancel()

	vector, err := s.embedder.CreateEmbedding(embedCtx, text)
	if err != nil {
		return chunkResult{ordinal: ordinal, err: err}
	}

	record := &domain.Chunk{
		DocumentID: doc.ID,
		BusinessID: doc.BusinessID,
		Ordinal:    ordinal,
		Text:       text,
		Category:   tagger.Categorize(text, doc.Filename),
		Keywords:   tagger.ExtractKeywords(text, s.config.KeywordTopN),
	}
	if err := record.SetEmbedding(vector); err != nil {
		return chunkResult{ordinal: ordinal, err: err}
	}
	return chunkResult{ordinal: ordinal, record: record}
}
