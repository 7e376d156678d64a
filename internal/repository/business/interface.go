// File: internal/repository/business/interface.go
package business

import (
	"context"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

// BusinessRepository handles business data operations.
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id uint) (*domain.Business, error)
	FindByOwnerEmail(ctx context.Context, ownerEmail string) (*domain.Business, error)
	FindByChatToken(ctx context.Context, token string) (*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
	Delete(ctx context.Context, id uint) error
}
