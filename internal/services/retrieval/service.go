// File: internal/services/retrieval/service.go
package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/repository/chunk"
	"github.com/bizchat-labs/bizchat/internal/services/contact"
)

// EmbeddingProvider creates the query embedding.
type EmbeddingProvider interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Logger defines the logging interface used by the retrieval service.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ScoredChunk pairs a chunk with its similarity to the query.
type ScoredChunk struct {
	Chunk      domain.Chunk
	Similarity float64
}

// contactQueryKeywords marks a query as contact-like, triggering the
// contact-chunk override.
var contactQueryKeywords = []string{
	"contact", "phone", "call", "whatsapp", "email", "address", "location",
	"map", "reach", "visit", "hours", "timings", "business hours",
}

// contactFieldLabels score individual field lines when ranking chunks for
// the override; the card sentinel itself is worth the most.
var contactFieldLabels = []string{"Phone:", "Email:", "Address:", "Website:", "Hours:"}

const contactSentinelScore = 10

// Service ranks a business's chunks against a user query. Stateless and
// read-only: every call re-embeds the query and re-scans all chunks.
type Service struct {
	config   *Config
	embedder EmbeddingProvider
	chunks   chunk.ChunkRepository
	logger   Logger
}

func NewService(config *Config, embedder EmbeddingProvider, chunks chunk.ChunkRepository, logger Logger) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("retrieval config: %w", err)
	}
	return &Service{
		config:   config,
		embedder: embedder,
		chunks:   chunks,
		logger:   logger,
	}, nil
}

// Retrieve embeds the query, scores every chunk of the business by cosine
// similarity, and returns the top K. Contact-like queries additionally get
// the best-scoring contact chunk forced into the result set: for very short
// factual queries cosine similarity alone often fails to surface the curated
// contact card, so the override patches precision rather than papering over
// a bug.
func (s *Service) Retrieve(ctx context.Context, businessID uint, query string) ([]ScoredChunk, error) {
	embedCtx, cancel := context.WithTimeout(ctx, s.config.EmbedTimeout)
	defer cancel()
	queryVector, err := s.embedder.CreateEmbedding(embedCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	chunks, err := s.chunks.FindByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	scored := make([]ScoredChunk, 0, len(chunks))
	for _, c := range chunks {
		vector, err := c.EmbeddingVector()
		if err != nil {
			s.logger.Warn("skipping chunk with unreadable embedding", "chunk_id", c.ID, "error", err)
			continue
		}
		scored = append(scored, ScoredChunk{
			Chunk:      c,
			Similarity: CosineSimilarity(queryVector, vector),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	selected := scored
	if len(selected) > s.config.TopK {
		selected = selected[:s.config.TopK]
	}

	if IsContactQuery(query) {
		selected = s.applyContactOverride(scored, selected)
	}

	s.logger.Debug("retrieval completed",
		"business_id", businessID,
		"candidates", len(scored),
		"selected", len(selected))
	return selected, nil
}

// IsContactQuery reports whether the query matches the fixed contact-intent
// keyword list.
func IsContactQuery(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range contactQueryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// applyContactOverride finds the chunk that best looks like the contact card
// and, if it isn't already selected, swaps it into the lowest-ranked slot.
func (s *Service) applyContactOverride(all, selected []ScoredChunk) []ScoredChunk {
	best := -1
	bestScore := 0
	for i, sc := range all {
		score := contactScore(sc.Chunk.Text)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return selected
	}

	for _, sc := range selected {
		if sc.Chunk.ID == all[best].Chunk.ID {
			return selected
		}
	}

	s.logger.Info("contact override applied",
		"chunk_id", all[best].Chunk.ID,
		"contact_score", bestScore)
	if len(selected) == 0 {
		return []ScoredChunk{all[best]}
	}
	selected[len(selected)-1] = all[best]
	return selected
}

// contactScore ranks how much a chunk looks like the synthesized contact
// card. The sentinel dominates; individual field labels add a little.
func contactScore(text string) int {
	score := 0
	if strings.Contains(text, contact.CardStart) {
		score += contactSentinelScore
	}
	for _, label := range contactFieldLabels {
		if strings.Contains(text, label) {
			score++
		}
	}
	return score
}
