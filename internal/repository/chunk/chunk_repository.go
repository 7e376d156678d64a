// File: internal/repository/chunk/chunk_repository.go
package chunk

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

type gormChunkRepository struct {
	db *gorm.DB
}

func NewChunkRepository(db *gorm.DB) ChunkRepository {
	return &gormChunkRepository{db: db}
}

func (r *gormChunkRepository) Create(ctx context.Context, chunk *domain.Chunk) (*domain.Chunk, error) {
	if chunk == nil || chunk.DocumentID == 0 || chunk.BusinessID == 0 {
		return nil, errors.New("chunk requires document and business IDs")
	}
	if chunk.Text == "" {
		return nil, errors.New("chunk text cannot be empty")
	}
	if chunk.Embedding == "" {
		return nil, errors.New("chunk requires a stored embedding")
	}

	if err := r.db.WithContext(ctx).Create(chunk).Error; err != nil {
		log.Printf("[ChunkRepository] Database error creating chunk %d of document %d: %v", chunk.Ordinal, chunk.DocumentID, err)
		return nil, errors.New("database error creating chunk")
	}
	return chunk, nil
}

// FindByBusinessID loads every chunk of a business. Retrieval scores all of
// them in-process, so no filtering happens here.
func (r *gormChunkRepository) FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Chunk, error) {
	if businessID == 0 {
		return nil, errors.New("invalid business ID")
	}

	var chunks []domain.Chunk
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("document_id ASC, ordinal ASC").
		Find(&chunks).Error
	if err != nil {
		log.Printf("[ChunkRepository] Database error listing chunks for business %d: %v", businessID, err)
		return nil, errors.New("database error fetching chunks")
	}
	return chunks, nil
}

func (r *gormChunkRepository) CountByDocumentID(ctx context.Context, documentID uint) (int64, error) {
	if documentID == 0 {
		return 0, errors.New("invalid document ID")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Chunk{}).
		Where("document_id = ?", documentID).
		Count(&count).Error
	if err != nil {
		log.Printf("[ChunkRepository] Database error counting chunks for document %d: %v", documentID, err)
		return 0, errors.New("database error counting chunks")
	}
	return count, nil
}

func (r *gormChunkRepository) DeleteByDocumentID(ctx context.Context, documentID uint) error {
	if documentID == 0 {
		return errors.New("invalid document ID")
	}

	result := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Delete(&domain.Chunk{})
	if result.Error != nil {
		log.Printf("[ChunkRepository] Database error deleting chunks for document %d: %v", documentID, result.Error)
		return errors.New("database error deleting chunks")
	}
	return nil
}

func (r *gormChunkRepository) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	if businessID == 0 {
		return errors.New("invalid business ID")
	}

	result := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&domain.Chunk{})
	if result.Error != nil {
		log.Printf("[ChunkRepository] Database error deleting chunks for business %d: %v", businessID, result.Error)
		return errors.New("database error deleting chunks")
	}

	log.Printf("[ChunkRepository] Deleted %d chunks for business %d", result.RowsAffected, businessID)
	return nil
}
