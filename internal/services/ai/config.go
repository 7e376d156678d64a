// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	// Embedding Configuration
	EmbeddingKey     string
	EmbeddingBaseURL string
	EmbeddingModel   string

	// LLM Configuration
	LLMKey     string
	LLMBaseURL string
	ChatModel  string

	// Performance Configuration
	Timeout time.Duration

	// Model Parameters. Kept near-deterministic so answers stay grounded in
	// the retrieved context.
	Temperature float32
	TopP        float32
	MaxTokens   int
}

func (c *Config) Validate() error {
	if c.EmbeddingKey == "" {
		return fmt.Errorf("AI_EMBEDDING_KEY is required")
	}
	if c.LLMKey == "" {
		return fmt.Errorf("AI_LLM_KEY is required")
	}
	if c.EmbeddingModel == "" {
		return fmt.Errorf("AI_EMBEDDING_MODEL is required")
	}
	if c.ChatModel == "" {
		return fmt.Errorf("AI_CHAT_MODEL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:     60 * time.Second,
		Temperature: 0.2,
		TopP:        0.9,
		MaxTokens:   500,
	}
}
