// File: internal/services/extract/errors.go
package extract

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeUnsupported ErrorType = "UNSUPPORTED_FORMAT"
	ErrTypeExtraction  ErrorType = "EXTRACTION"
)

type ExtractError struct {
	Type     ErrorType
	Filename string
	Message  string
	Cause    error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract %s error for %q: %s (caused by: %v)",
			e.Type, e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract %s error for %q: %s", e.Type, e.Filename, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

func NewUnsupportedFormatError(filename, extension string) *ExtractError {
	return &ExtractError{
		Type:     ErrTypeUnsupported,
		Filename: filename,
		Message:  fmt.Sprintf("unsupported file extension %q", extension),
	}
}

func NewExtractionError(filename, msg string, cause error) *ExtractError {
	return &ExtractError{
		Type:     ErrTypeExtraction,
		Filename: filename,
		Message:  msg,
		Cause:    cause,
	}
}

// IsUnsupportedFormat reports whether err is an unsupported-extension error.
func IsUnsupportedFormat(err error) bool {
	var ee *ExtractError
	return errors.As(err, &ee) && ee.Type == ErrTypeUnsupported
}
