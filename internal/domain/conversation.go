// File: internal/domain/conversation.go
package domain

import "time"

// Conversation is a single end-user chat thread against a business's bot.
type Conversation struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	BusinessID uint      `json:"business_id" gorm:"index;not null"`
	VisitorID  string    `json:"visitor_id" gorm:"index;size:36"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
