// File: internal/repository/conversation/interface.go
package conversation

import (
	"context"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

// ConversationRepository handles conversation data operations.
type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) (*domain.Conversation, error)
	FindByID(ctx context.Context, id uint) (*domain.Conversation, error)
	FindByBusinessAndVisitor(ctx context.Context, businessID uint, visitorID string) (*domain.Conversation, error)
	CountByBusinessID(ctx context.Context, businessID uint) (int64, error)
	TouchUpdatedAt(ctx context.Context, id uint) error
	DeleteByBusinessID(ctx context.Context, businessID uint) error
}
