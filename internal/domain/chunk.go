// File: internal/domain/chunk.go
package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// Chunk is a bounded, overlapping substring of a document's processed text,
// individually embedded for retrieval. Identified by (document, ordinal).
type Chunk struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	DocumentID uint   `json:"document_id" gorm:"index;not null"`
	BusinessID uint   `json:"business_id" gorm:"index;not null"`
	Ordinal    int    `json:"ordinal" gorm:"not null"`
	Text       string `json:"text" gorm:"not null"`
	Category   string `json:"category" gorm:"size:40"`
	Keywords   string `json:"keywords" gorm:"size:255"`

	// Embedding is the JSON-encoded vector. Dimensionality is fixed by the
	// embedding model, not by this schema.
	Embedding string `json:"-" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

// SetEmbedding serializes the vector for storage.
func (c *Chunk) SetEmbedding(vector []float32) error {
	if len(vector) == 0 {
		return errors.New("embedding vector cannot be empty")
	}
	data, err := json.Marshal(vector)
	if err != nil {
		return err
	}
	c.Embedding = string(data)
	return nil
}

// EmbeddingVector deserializes the stored vector.
func (c *Chunk) EmbeddingVector() ([]float32, error) {
	if c.Embedding == "" {
		return nil, errors.New("chunk has no stored embedding")
	}
	var vector []float32
	if err := json.Unmarshal([]byte(c.Embedding), &vector); err != nil {
		return nil, err
	}
	return vector, nil
}
