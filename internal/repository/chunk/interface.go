// File: internal/repository/chunk/interface.go
package chunk

import (
	"context"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

// ChunkRepository handles embedded-chunk data operations.
type ChunkRepository interface {
	Create(ctx context.Context, chunk *domain.Chunk) (*domain.Chunk, error)
	FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Chunk, error)
	CountByDocumentID(ctx context.Context, documentID uint) (int64, error)
	DeleteByDocumentID(ctx context.Context, documentID uint) error
	DeleteByBusinessID(ctx context.Context, businessID uint) error
}
