// File: internal/services/extract/pdf.go
package extract

import "fmt"

// extractPDF deliberately does not parse PDF content. It returns a fixed
// placeholder naming the uploaded file so the owner can paste the content
// manually or re-upload it as text/docx. Keep this explicit: a placeholder
// the owner can see beats silently indexing garbage.
func extractPDF(path, originalName string) (string, error) {
	return fmt.Sprintf(
		"PDF file %q was uploaded. Automatic PDF text extraction is not supported. "+
			"Please paste the document content manually, or re-upload it as a .txt or .docx file.",
		originalName,
	), nil
}
