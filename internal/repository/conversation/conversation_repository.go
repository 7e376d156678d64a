// File: internal/repository/conversation/conversation_repository.go
package conversation

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

var ErrConversationNotFound = errors.New("conversation not found")

type gormConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &gormConversationRepository{db: db}
}

func (r *gormConversationRepository) Create(ctx context.Context, conv *domain.Conversation) (*domain.Conversation, error) {
	if conv == nil || conv.BusinessID == 0 {
		return nil, errors.New("conversation requires a business ID")
	}

	if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
		log.Printf("[ConversationRepository] Database error creating conversation for business %d: %v", conv.BusinessID, err)
		return nil, errors.New("database error creating conversation")
	}
	return conv, nil
}

func (r *gormConversationRepository) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	if id == 0 {
		return nil, errors.New("invalid conversation ID")
	}

	var conv domain.Conversation
	err := r.db.WithContext(ctx).First(&conv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		log.Printf("[ConversationRepository] FindByID database error: %v", err)
		return nil, errors.New("database query failed")
	}
	return &conv, nil
}

func (r *gormConversationRepository) FindByBusinessAndVisitor(ctx context.Context, businessID uint, visitorID string) (*domain.Conversation, error) {
	if businessID == 0 || visitorID == "" {
		return nil, errors.New("business ID and visitor ID are required")
	}

	var conv domain.Conversation
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND visitor_id = ?", businessID, visitorID).
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		log.Printf("[ConversationRepository] FindByBusinessAndVisitor database error: %v", err)
		return nil, errors.New("database query failed")
	}
	return &conv, nil
}

func (r *gormConversationRepository) CountByBusinessID(ctx context.Context, businessID uint) (int64, error) {
	if businessID == 0 {
		return 0, errors.New("invalid business ID")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Conversation{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	if err != nil {
		log.Printf("[ConversationRepository] Database error counting conversations for business %d: %v", businessID, err)
		return 0, errors.New("database error counting conversations")
	}
	return count, nil
}

func (r *gormConversationRepository) TouchUpdatedAt(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("invalid conversation ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Conversation{}).
		Where("id = ?", id).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		log.Printf("[ConversationRepository] Database error touching conversation %d: %v", id, result.Error)
		return errors.New("database error updating conversation timestamp")
	}
	if result.RowsAffected == 0 {
		return ErrConversationNotFound
	}
	return nil
}

func (r *gormConversationRepository) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	if businessID == 0 {
		return errors.New("invalid business ID")
	}

	result := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&domain.Conversation{})
	if result.Error != nil {
		log.Printf("[ConversationRepository] Database error deleting conversations for business %d: %v", businessID, result.Error)
		return errors.New("database error deleting conversations")
	}
	return nil
}
