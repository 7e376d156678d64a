// File: internal/repository/business/business_repository.go
package business

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

var ErrBusinessNotFound = errors.New("business not found")

type gormBusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &gormBusinessRepository{db: db}
}

func (r *gormBusinessRepository) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	if err := business.IsValid(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(business).Error; err != nil {
		log.Printf("[BusinessRepository] Database error creating business %q: %v", business.Name, err)
		return nil, errors.New("database error creating business")
	}

	log.Printf("[BusinessRepository] Business created with ID %d", business.ID)
	return business, nil
}

func (r *gormBusinessRepository) FindByID(ctx context.Context, id uint) (*domain.Business, error) {
	if id == 0 {
		return nil, errors.New("invalid business ID")
	}

	var business domain.Business
	err := r.db.WithContext(ctx).First(&business, id).Error
	return r.handleFindError(err, &business, "FindByID")
}

func (r *gormBusinessRepository) FindByOwnerEmail(ctx context.Context, ownerEmail string) (*domain.Business, error) {
	if ownerEmail == "" {
		return nil, errors.New("owner email is required")
	}

	var business domain.Business
	err := r.db.WithContext(ctx).Where("owner_email = ?", ownerEmail).First(&business).Error
	return r.handleFindError(err, &business, "FindByOwnerEmail")
}

func (r *gormBusinessRepository) FindByChatToken(ctx context.Context, token string) (*domain.Business, error) {
	if token == "" {
		return nil, errors.New("chat token is required")
	}

	var business domain.Business
	err := r.db.WithContext(ctx).Where("chat_token = ?", token).First(&business).Error
	return r.handleFindError(err, &business, "FindByChatToken")
}

func (r *gormBusinessRepository) Update(ctx context.Context, business *domain.Business) error {
	if business.ID == 0 {
		return errors.New("invalid business ID")
	}

	if err := r.db.WithContext(ctx).Save(business).Error; err != nil {
		log.Printf("[BusinessRepository] Database error updating business ID %d: %v", business.ID, err)
		return errors.New("database error updating business")
	}
	return nil
}

func (r *gormBusinessRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("invalid business ID")
	}

	result := r.db.WithContext(ctx).Delete(&domain.Business{}, id)
	if result.Error != nil {
		log.Printf("[BusinessRepository] Database error deleting business ID %d: %v", id, result.Error)
		return errors.New("database error deleting business")
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}

	log.Printf("[BusinessRepository] Business deleted: ID %d", id)
	return nil
}

func (r *gormBusinessRepository) handleFindError(err error, business *domain.Business, operation string) (*domain.Business, error) {
	if err == nil {
		return business, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBusinessNotFound
	}
	log.Printf("[BusinessRepository] %s database error: %v", operation, err)
	return nil, errors.New("database query failed")
}
