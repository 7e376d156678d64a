// File: internal/services/reply/service.go
package reply

import (
	"context"
	"fmt"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/services/ai"
	"github.com/bizchat-labs/bizchat/internal/services/retrieval"
)

// FallbackReply is returned to the end user on any completion failure. The
// raw provider error never reaches the visitor.
const FallbackReply = "I'm sorry, I'm having trouble answering right now. " +
	"Please try again in a moment, or reach out to the team directly."

// CompletionProvider generates the assistant reply.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, systemPrompt string, history []ai.ChatTurn, userMessage string) (string, error)
}

// Logger defines the logging interface used by the reply service.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Service turns retrieved chunks plus conversation history into a reply.
type Service struct {
	config    *Config
	completer CompletionProvider
	logger    Logger
}

func NewService(config *Config, completer CompletionProvider, logger Logger) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("reply config: %w", err)
	}
	return &Service{
		config:    config,
		completer: completer,
		logger:    logger,
	}, nil
}

// Respond builds the grounded prompt and asks the model for a reply. Any
// failure is recovered locally into the fixed fallback string.
func (s *Service) Respond(
	ctx context.Context,
	business *domain.Business,
	chunks []retrieval.ScoredChunk,
	history []domain.Message,
	userMessage string,
) string {
	systemPrompt := BuildSystemPrompt(business, chunks)
	turns := s.historyWindow(history)

	completionCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	answer, err := s.completer.GetCompletion(completionCtx, systemPrompt, turns, userMessage)
	if err != nil {
		s.logger.Error("completion failed, returning fallback",
			"business_id", business.ID,
			"error", err)
		return FallbackReply
	}

	s.logger.Debug("reply generated", "business_id", business.ID, "length", len(answer))
	return answer
}

// historyWindow keeps only the last configured number of turns.
func (s *Service) historyWindow(history []domain.Message) []ai.ChatTurn {
	if len(history) > s.config.HistoryWindow {
		history = history[len(history)-s.config.HistoryWindow:]
	}
	turns := make([]ai.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, ai.ChatTurn{Role: m.Role, Content: m.Content})
	}
	return turns
}
