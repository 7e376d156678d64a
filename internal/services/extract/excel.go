// File: internal/services/extract/excel.go
package extract

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// extractSpreadsheet iterates every sheet of a workbook, emitting a
// sheet-name banner followed by one line per non-empty row with cells joined
// by " | ". Fully blank rows are skipped.
func extractSpreadsheet(path, originalName string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", NewExtractionError(originalName, "failed to open spreadsheet", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", NewExtractionError(originalName, fmt.Sprintf("failed to read sheet %q", sheet), err)
		}

		b.WriteString(fmt.Sprintf("--- Sheet: %s ---\n", sheet))
		for _, row := range rows {
			var cells []string
			for _, cell := range row {
				cell = strings.TrimSpace(cell)
				if cell != "" {
					cells = append(cells, cell)
				}
			}
			if len(cells) == 0 {
				continue
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}
