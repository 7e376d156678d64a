// File: internal/services/extract/csv.go
package extract

import (
	"encoding/csv"
	"os"
	"strings"
)

// extractCSV reconstructs a csv file as readable prose: a "Columns:" header
// line followed by one labeled block per record. Empty cells are omitted so
// sparse exports don't produce noise lines.
func extractCSV(path, originalName string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewExtractionError(originalName, "failed to open csv file", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return "", NewExtractionError(originalName, "malformed csv content", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	header := records[0]
	var b strings.Builder
	b.WriteString("Columns: ")
	b.WriteString(strings.Join(header, ", "))
	b.WriteString("\n")

	for _, record := range records[1:] {
		var block []string
		for i, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			label := ""
			if i < len(header) {
				label = strings.TrimSpace(header[i])
			}
			if label == "" {
				block = append(block, cell)
				continue
			}
			block = append(block, label+": "+cell)
		}
		if len(block) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(block, "\n"))
		b.WriteString("\n")
	}

	return b.String(), nil
}
