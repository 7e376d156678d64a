// File: internal/services/extract/extract.go
package extract

import (
	"os"
	"strings"
)

// Logger defines the logging interface used by the extract service.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type extractFunc func(path, originalName string) (string, error)

// Service converts uploaded files into normalized plain text.
type Service struct {
	logger     Logger
	extractors map[string]extractFunc
}

func NewService(logger Logger) *Service {
	return &Service{
		logger: logger,
		extractors: map[string]extractFunc{
			"csv":  extractCSV,
			"txt":  extractText,
			"docx": extractDocx,
			"xlsx": extractSpreadsheet,
			"xls":  extractSpreadsheet,
			"pdf":  extractPDF,
		},
	}
}

// Extract reads the file at path and returns cleaned plain text. Unrecognized
// extensions fail with an UNSUPPORTED_FORMAT error; that failure is scoped to
// the one file and must not abort sibling uploads.
func (s *Service) Extract(path, extension, originalName string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))

	fn, ok := s.extractors[ext]
	if !ok {
		s.logger.Warn("rejecting unsupported upload", "filename", originalName, "extension", ext)
		return "", NewUnsupportedFormatError(originalName, ext)
	}

	raw, err := fn(path, originalName)
	if err != nil {
		s.logger.Error("extraction failed", "filename", originalName, "extension", ext, "error", err)
		return "", err
	}

	cleaned := Clean(raw)
	s.logger.Debug("extraction completed", "filename", originalName, "chars", len(cleaned))
	return cleaned, nil
}

func extractText(path, originalName string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewExtractionError(originalName, "failed to read text file", err)
	}
	return string(data), nil
}
