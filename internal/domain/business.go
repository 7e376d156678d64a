// File: internal/domain/business.go
package domain

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Business is the owner-facing record a chatbot is generated for. Its
// contact fields are the authoritative fallback when retrieval context
// lacks a detail.
type Business struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"not null;size:120"`
	Description string `json:"description"`
	Phone       string `json:"phone" gorm:"size:30"`
	Email       string `json:"email" gorm:"size:120"`
	Address     string `json:"address" gorm:"size:255"`
	Website     string `json:"website" gorm:"size:255"`
	Hours       string `json:"hours"`

	// Owner account fields.
	OwnerEmail    string `json:"owner_email" gorm:"uniqueIndex;not null;size:120"`
	OwnerPassword string `json:"-" gorm:"not null"`

	// ChatToken is the public, hash-addressed handle end users chat through.
	ChatToken string `json:"chat_token" gorm:"uniqueIndex;size:36"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HashPassword securely hashes the owner's password.
func (b *Business) HashPassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	b.OwnerPassword = string(hashed)
	return nil
}

// ValidatePassword compares a plain-text password with the stored hash.
func (b *Business) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(b.OwnerPassword), []byte(password))
}

func (b *Business) IsValid() error {
	if len(strings.TrimSpace(b.Name)) < 2 {
		return errors.New("business name must be at least 2 characters")
	}
	if !strings.Contains(b.OwnerEmail, "@") {
		return errors.New("a valid owner email is required")
	}
	return nil
}
