// File: internal/services/ingest/errors.go
package ingest

import "fmt"

type ErrorType string

const (
	ErrTypeConfig      ErrorType = "CONFIG"
	ErrTypePersistence ErrorType = "PERSISTENCE"
)

type IngestError struct {
	Type     ErrorType
	Filename string
	Message  string
	Cause    error
}

func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest %s error for %q: %s (caused by: %v)",
			e.Type, e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest %s error for %q: %s", e.Type, e.Filename, e.Message)
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}

func NewPersistenceError(filename, msg string, cause error) *IngestError {
	return &IngestError{Type: ErrTypePersistence, Filename: filename, Message: msg, Cause: cause}
}
