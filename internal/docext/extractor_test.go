package docext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		format   Format
		ok       bool
	}{
		{"resume.pdf", FormatPDF, true},
		{"Resume.PDF", FormatPDF, true},
		{"cv.docx", FormatDOCX, true},
		{"notes.txt", FormatPlainText, true},
		{"sheet.xlsx", "", false},
		{"archive.doc", "", false},
		{"noextension", "", false},
	}
	for _, tt := range tests {
		format, ok := FormatFromFilename(tt.filename)
		assert.Equal(t, tt.ok, ok, tt.filename)
		assert.Equal(t, tt.format, format, tt.filename)
	}
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText([]byte("hello\nworld"), FormatPlainText)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", text)
}

func TestExtractText_PlainTextLossyDecoding(t *testing.T) {
	// Invalid UTF-8 bytes are dropped, never propagated as an error.
	text, err := ExtractText([]byte("caf\xff\xfee latte"), FormatPlainText)
	require.NoError(t, err)
	assert.Equal(t, "cafe latte", text)
}

func TestExtractText_EmptyPlainText(t *testing.T) {
	text, err := ExtractText(nil, FormatPlainText)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText([]byte("data"), Format("xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf"), FormatPDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailure)
}

func TestExtractText_CorruptDOCX(t *testing.T) {
	_, err := ExtractText([]byte("not a zip archive"), FormatDOCX)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailure)
}

func TestDocxContentToText(t *testing.T) {
	content := `<w:body>` +
		`<w:p><w:r><w:t>John Doe</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>Skills: Go </w:t></w:r><w:r><w:t xml:space="preserve">&amp; SQL</w:t></w:r></w:p>` +
		`<w:sectPr/></w:body>`

	assert.Equal(t, "John Doe\n\nSkills: Go & SQL\n", docxContentToText(content))
}

func TestDocxContentToText_NoParagraphs(t *testing.T) {
	assert.Empty(t, docxContentToText(`<w:body><w:sectPr/></w:body>`))
}
