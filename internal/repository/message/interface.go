// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

// MessageRepository handles message data operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	FindRecentByConversationID(ctx context.Context, conversationID uint, limit int) ([]domain.Message, error)
	FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Message, error)
	DeleteByBusinessID(ctx context.Context, businessID uint) error
}
