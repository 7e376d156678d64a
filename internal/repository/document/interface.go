// File: internal/repository/document/interface.go
package document

import (
	"context"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

// DocumentRepository handles processed-document data operations.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id uint) (*domain.Document, error)
	FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Document, error)
	Delete(ctx context.Context, id uint) error
	DeleteByBusinessID(ctx context.Context, businessID uint) error
}
