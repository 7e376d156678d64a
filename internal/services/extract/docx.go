// File: internal/services/extract/docx.go
package extract

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// extractDocx pulls the raw text out of a docx archive, discarding styling.
// A docx file is a zip whose word/document.xml carries the text in <w:t>
// runs grouped into <w:p> paragraphs.
func extractDocx(path, originalName string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", NewExtractionError(originalName, "file is not a valid docx archive", err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", NewExtractionError(originalName, "failed to open document body", err)
		}
		text, err := readDocumentXML(rc)
		rc.Close()
		if err != nil {
			return "", NewExtractionError(originalName, "malformed document body", err)
		}
		return text, nil
	}

	return "", NewExtractionError(originalName, "docx archive has no document body", nil)
}

// readDocumentXML walks the document stream collecting character data from
// text runs and emitting a newline at each paragraph close.
func readDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var b strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}
