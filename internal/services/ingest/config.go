// File: internal/services/ingest/config.go
package ingest

import (
	"fmt"
	"time"
)

type Config struct {
	// Chunking Configuration
	ChunkMaxLength int
	ChunkOverlap   int

	// MaxChunksPerFile caps embedding cost per upload so ingestion finishes
	// inside the platform request timeout.
	MaxChunksPerFile int

	// Embedding Configuration
	EmbedBatchSize int           // chunks embedded concurrently per batch
	EmbedTimeout   time.Duration // per-embedding-call timeout
	BatchDelay     time.Duration // pause between batches for provider rate limits

	// Keyword Configuration
	KeywordTopN int
}

func (c *Config) Validate() error {
	if c.ChunkMaxLength <= 0 {
		return fmt.Errorf("chunk_max_length must be positive")
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk_overlap cannot be negative")
	}
	if c.ChunkOverlap >= c.ChunkMaxLength {
		return fmt.Errorf("chunk_overlap must be smaller than chunk_max_length")
	}
	if c.MaxChunksPerFile <= 0 {
		return fmt.Errorf("max_chunks_per_file must be positive")
	}
	if c.EmbedBatchSize <= 0 {
		return fmt.Errorf("embed_batch_size must be positive")
	}
	if c.EmbedTimeout <= 0 {
		return fmt.Errorf("embed_timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		ChunkMaxLength:   1000,
		ChunkOverlap:     150,
		MaxChunksPerFile: 40,
		EmbedBatchSize:   5,
		EmbedTimeout:     20 * time.Second,
		BatchDelay:       500 * time.Millisecond,
		KeywordTopN:      8,
	}
}
