// File: internal/domain/message.go
package domain

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is a single turn in a conversation. Intent and sentiment are
// keyword heuristics stamped on user messages for the analytics view.
type Message struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	ConversationID uint      `json:"conversation_id" gorm:"index;not null"`
	Role           string    `json:"role" gorm:"not null;size:12"`
	Content        string    `json:"content" gorm:"not null"`
	Intent         string    `json:"intent" gorm:"size:20"`
	Sentiment      string    `json:"sentiment" gorm:"size:10"`
	CreatedAt      time.Time `json:"created_at"`
}
