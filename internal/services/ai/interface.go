// File: internal/services/ai/interface.go
package ai

import "context"

// ChatTurn is one prior turn of conversation history passed to the model.
type ChatTurn struct {
	Role    string
	Content string
}

// EmbeddingProvider handles text embeddings.
type EmbeddingProvider interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// CompletionProvider handles chat completions.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, systemPrompt string, history []ChatTurn, userMessage string) (string, error)
}

// Provider combines embedding and completion capabilities.
type Provider interface {
	EmbeddingProvider
	CompletionProvider
}

// Logger defines the logging interface used by AI services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
