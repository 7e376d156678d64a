// File: internal/repository/document/document_repository.go
package document

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/bizchat-labs/bizchat/internal/domain"
)

var ErrDocumentNotFound = errors.New("document not found")

type gormDocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &gormDocumentRepository{db: db}
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if doc == nil || doc.BusinessID == 0 {
		return nil, errors.New("document requires a business ID")
	}
	if doc.Filename == "" {
		return nil, errors.New("document requires a filename")
	}

	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		log.Printf("[DocumentRepository] Database error creating document %q for business %d: %v", doc.Filename, doc.BusinessID, err)
		return nil, errors.New("database error creating document")
	}

	log.Printf("[DocumentRepository] Document created: ID %d (%s)", doc.ID, doc.Filename)
	return doc, nil
}

func (r *gormDocumentRepository) FindByID(ctx context.Context, id uint) (*domain.Document, error) {
	if id == 0 {
		return nil, errors.New("invalid document ID")
	}

	var doc domain.Document
	err := r.db.WithContext(ctx).First(&doc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		log.Printf("[DocumentRepository] FindByID database error: %v", err)
		return nil, errors.New("database query failed")
	}
	return &doc, nil
}

func (r *gormDocumentRepository) FindByBusinessID(ctx context.Context, businessID uint) ([]domain.Document, error) {
	if businessID == 0 {
		return nil, errors.New("invalid business ID")
	}

	var docs []domain.Document
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		log.Printf("[DocumentRepository] Database error listing documents for business %d: %v", businessID, err)
		return nil, errors.New("database error fetching documents")
	}
	return docs, nil
}

func (r *gormDocumentRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("invalid document ID")
	}

	result := r.db.WithContext(ctx).Delete(&domain.Document{}, id)
	if result.Error != nil {
		log.Printf("[DocumentRepository] Database error deleting document %d: %v", id, result.Error)
		return errors.New("database error deleting document")
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}

	log.Printf("[DocumentRepository] Document deleted: ID %d", id)
	return nil
}

// DeleteByBusinessID removes all of a business's documents; part of the
// business cascade delete.
func (r *gormDocumentRepository) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	if businessID == 0 {
		return errors.New("invalid business ID")
	}

	result := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&domain.Document{})
	if result.Error != nil {
		log.Printf("[DocumentRepository] Database error deleting documents for business %d: %v", businessID, result.Error)
		return errors.New("database error deleting documents")
	}

	log.Printf("[DocumentRepository] Deleted %d documents for business %d", result.RowsAffected, businessID)
	return nil
}
