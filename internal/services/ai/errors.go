// File: internal/services/ai/errors.go
package ai

import (
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrTypeConfig    ErrorType = "CONFIG"
	ErrTypeAuth      ErrorType = "AUTH"
	ErrTypeQuota     ErrorType = "QUOTA"
	ErrTypeRateLimit ErrorType = "RATE_LIMIT"
	ErrTypeProvider  ErrorType = "PROVIDER"
)

type AIError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AIError) Unwrap() error {
	return e.Cause
}

func NewConfigError(msg string) *AIError {
	return &AIError{Type: ErrTypeConfig, Operation: "config", Message: msg}
}

// NewProviderError classifies the cause by its message so operators can tell
// auth, quota, and rate-limit failures apart from the logs. The upstream
// providers only give us message strings, so the classification is
// substring-based and those markers must not change.
func NewProviderError(operation, msg string, cause error) *AIError {
	return &AIError{
		Type:      classify(cause),
		Operation: operation,
		Message:   msg,
		Cause:     cause,
	}
}

func classify(err error) ErrorType {
	if err == nil {
		return ErrTypeProvider
	}
	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "401"):
		return ErrTypeAuth
	case strings.Contains(message, "quota"):
		return ErrTypeQuota
	case strings.Contains(message, "rate limit"):
		return ErrTypeRateLimit
	default:
		return ErrTypeProvider
	}
}
