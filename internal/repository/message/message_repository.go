// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if msg == nil || msg.ConversationID == 0 {
		return nil, errors.New("message requires a conversation ID")
	}
	if msg.Role != domain.MessageRoleUser && msg.Role != domain.MessageRoleAssistant {
		return nil, errors.New("invalid message role")
	}
	if msg.Content == "" {
		return nil, errors.New("message content cannot be empty")
	}

	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		log.Printf("[MessageRepository] Database error creating message in conversation %d: %v", msg.ConversationID, err)
		return nil, errors.New("database error creating message")
	}
	return msg, nil
}

// FindRecentByConversationID returns the last limit messages of a
// conversation in chronological order.
func (r *gormMessageRepository) FindRecentByConversationID(ctx context.Context, conversationID uint, limit int) ([]domain.Message, error) {
	if conversationID == 0 {
		return nil, errors.New("invalid conversation ID")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching messages for conversation %d: %v", conversationID, err)
		return nil, errors.New("database error fetching messages")
	}

	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// FindByBusinessID joins through conversations; used by the analytics view.
func (r *gormMessageRepository) FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Message, error) {
	if businessID == 0 {
		return nil, errors.New("invalid business ID")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.business_id = ?", businessID).
		Order("messages.created_at ASC").
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching messages for business %d: %v", businessID, err)
		return nil, errors.New("database error fetching messages")
	}
	return messages, nil
}

func (r *gormMessageRepository) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	if businessID == 0 {
		return errors.New("invalid business ID")
	}

	err := r.db.WithContext(ctx).
		Where("conversation_id IN (?)",
			r.db.Model(&domain.Conversation{}).Select("id").Where("business_id = ?", businessID)).
		Delete(&domain.Message{}).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error deleting messages for business %d: %v", businessID, err)
		return errors.New("database error deleting messages")
	}
	return nil
}
