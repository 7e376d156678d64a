// File: internal/services/retrieval/config.go
package retrieval

import (
	"fmt"
	"time"
)

type Config struct {
	// TopK is the number of chunks handed to the response composer.
	TopK int

	// EmbedTimeout bounds the query-embedding call.
	EmbedTimeout time.Duration
}

func (c *Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive")
	}
	if c.TopK > 20 {
		return fmt.Errorf("top_k cannot exceed 20")
	}
	if c.EmbedTimeout <= 0 {
		return fmt.Errorf("embed_timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		TopK:         6,
		EmbedTimeout: 30 * time.Second,
	}
}
