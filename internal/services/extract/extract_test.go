// File: internal/services/extract/extract_test.go
package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestService() *Service {
	return NewService(&noopLogger{})
}

type noopLogger struct{}

func (n *noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCleanNormalizesWhitespace(t *testing.T) {
	input := "Line one\r\nLine\ttwo   spaced  \r\n\r\n\r\n\r\nLine three   "
	got := Clean(input)

	assert.NotContains(t, got, "\r")
	assert.NotContains(t, got, "\t")
	assert.NotContains(t, got, "\n\n\n")
	assert.Equal(t, "Line one\nLine two spaced\n\nLine three", got)
}

func TestCleanTrimsResult(t *testing.T) {
	assert.Equal(t, "hello", Clean("\n\n  hello  \n\n"))
	assert.Equal(t, "", Clean("   \n\t  "))
}

func TestExtractTxt(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "Welcome to our store.\r\nOpen daily.")

	got, err := newTestService().Extract(path, "txt", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to our store.\nOpen daily.", got)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "image.png", "binary")

	_, err := newTestService().Extract(path, "png", "image.png")
	require.Error(t, err)
	assert.True(t, IsUnsupportedFormat(err))
	assert.Contains(t, err.Error(), "image.png")
}

func TestExtractNormalizesExtension(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "content")

	got, err := newTestService().Extract(path, " .TXT ", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "content", got)
}

func TestExtractCSV(t *testing.T) {
	csvContent := "Name,Price,Notes\nHaircut,500,\nShave,,quick service\n"
	path := writeTempFile(t, "services.csv", csvContent)

	got, err := newTestService().Extract(path, "csv", "services.csv")
	require.NoError(t, err)

	assert.Contains(t, got, "Columns: Name, Price, Notes")
	assert.Contains(t, got, "Name: Haircut")
	assert.Contains(t, got, "Price: 500")
	assert.Contains(t, got, "Notes: quick service")
	// Empty cells are omitted rather than rendered as bare labels.
	assert.NotContains(t, got, "Notes:\n")
	assert.NotContains(t, got, "Price:\n")
}

func TestExtractCSVMalformed(t *testing.T) {
	path := writeTempFile(t, "bad.csv", "a,\"unterminated\n")

	_, err := newTestService().Extract(path, "csv", "bad.csv")
	require.Error(t, err)
	assert.False(t, IsUnsupportedFormat(err))
}

func TestExtractPDFPlaceholder(t *testing.T) {
	path := writeTempFile(t, "brochure.pdf", "%PDF-1.4 fake")

	got, err := newTestService().Extract(path, "pdf", "brochure.pdf")
	require.NoError(t, err)
	assert.Contains(t, got, "brochure.pdf")
	assert.Contains(t, got, "not supported")
}

func createTestDocx(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return path
}

func TestExtractDocx(t *testing.T) {
	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>About Our Bakery</w:t></w:r></w:p>
<w:p><w:r><w:t>Fresh bread </w:t></w:r><w:r><w:t>every morning.</w:t></w:r></w:p>
</w:body>
</w:document>`
	path := createTestDocx(t, documentXML)

	got, err := newTestService().Extract(path, "docx", "about.docx")
	require.NoError(t, err)
	assert.Equal(t, "About Our Bakery\nFresh bread every morning.", got)
}

func TestExtractDocxMissingBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	other, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, _ = other.Write([]byte("<styles/>"))
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	_, err = newTestService().Extract(path, "docx", "empty.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document body")
}

func TestExtractDocxNotAnArchive(t *testing.T) {
	path := writeTempFile(t, "fake.docx", "this is not a zip")

	_, err := newTestService().Extract(path, "docx", "fake.docx")
	require.Error(t, err)
	assert.False(t, IsUnsupportedFormat(err))
}

func TestExtractXlsx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Dish"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Price"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Dosa"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "120"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := newTestService().Extract(path, "xlsx", "menu.xlsx")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "--- Sheet: Sheet1 ---"))
	assert.Contains(t, got, "Dish | Price")
	assert.Contains(t, got, "Dosa | 120")
}

func TestExtractXlsInvalid(t *testing.T) {
	path := writeTempFile(t, "legacy.xls", "not a real workbook")

	_, err := newTestService().Extract(path, "xls", "legacy.xls")
	require.Error(t, err)
	assert.False(t, IsUnsupportedFormat(err))
}
