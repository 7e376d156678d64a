// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizchat-labs/bizchat/internal/auth"
	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/repository/business"
)

var (
	emailRegex        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	passwordMinLength = 8
)

// AuthHandler holds the dependencies for owner authentication handlers.
type AuthHandler struct {
	Businesses business.BusinessRepository
	JWTSecret  []byte
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(businesses business.BusinessRepository, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{Businesses: businesses, JWTSecret: jwtSecret}
}

type registerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	Hours       string `json:"hours"`
	OwnerEmail  string `json:"owner_email"`
	Password    string `json:"password"`
}

// Register creates a business account and mints its public chat token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.OwnerEmail = strings.ToLower(strings.TrimSpace(req.OwnerEmail))
	if !emailRegex.MatchString(req.OwnerEmail) {
		writeError(w, "A valid owner email is required.", http.StatusBadRequest)
		return
	}
	if len(req.Password) < passwordMinLength {
		writeError(w, "Password must be at least 8 characters.", http.StatusBadRequest)
		return
	}

	biz := &domain.Business{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		Address:     strings.TrimSpace(req.Address),
		Website:     strings.TrimSpace(req.Website),
		Hours:       strings.TrimSpace(req.Hours),
		OwnerEmail:  req.OwnerEmail,
		ChatToken:   uuid.NewString(),
	}
	if err := biz.IsValid(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := biz.HashPassword(req.Password); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if existing, err := h.Businesses.FindByOwnerEmail(r.Context(), req.OwnerEmail); err == nil && existing != nil {
		writeError(w, "An account with this email already exists.", http.StatusConflict)
		return
	}

	created, err := h.Businesses.Create(r.Context(), biz)
	if err != nil {
		log.Printf("Registration error: %v", err)
		writeError(w, "Could not create business account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

type loginRequest struct {
	OwnerEmail string `json:"owner_email"`
	Password   string `json:"password"`
}

// Login validates owner credentials and sets the auth cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ownerEmail := strings.ToLower(strings.TrimSpace(req.OwnerEmail))
	if ownerEmail == "" || req.Password == "" {
		writeError(w, "Email and password are required.", http.StatusBadRequest)
		return
	}

	biz, err := h.Businesses.FindByOwnerEmail(r.Context(), ownerEmail)
	if err != nil {
		writeError(w, "Invalid email or password.", http.StatusUnauthorized)
		return
	}
	if err := biz.ValidatePassword(req.Password); err != nil {
		writeError(w, "Invalid email or password.", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(biz.ID, h.JWTSecret)
	if err != nil {
		log.Printf("Login error: %v", err)
		writeError(w, "Could not start session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"business_id": biz.ID,
		"chat_token":  biz.ChatToken,
	})
}

// Logout clears the auth cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Path:     "/",
	})
	w.WriteHeader(http.StatusNoContent)
}
