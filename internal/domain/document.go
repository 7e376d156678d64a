// File: internal/domain/document.go
package domain

import "time"

// Document holds the processed text of one uploaded file, including the
// synthesized contact card at the top. Immutable once processed; deleted
// together with its business.
type Document struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	BusinessID uint      `json:"business_id" gorm:"index;not null"`
	Filename   string    `json:"filename" gorm:"not null;size:255"`
	FileType   string    `json:"file_type" gorm:"size:10"`
	SizeBytes  int64     `json:"size_bytes"`
	Category   string    `json:"category" gorm:"size:40"`
	Content    string    `json:"content" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
