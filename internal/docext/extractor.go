package docext

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/nguyenthenguyen/docx"
)

// Format declares how a raw document's bytes should be interpreted.
type Format string

const (
	FormatPDF       Format = "pdf"
	FormatDOCX      Format = "docx"
	FormatPlainText Format = "plaintext"
)

var (
	// ErrUnsupportedFormat is returned for format tags outside the
	// supported set.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtractionFailure is returned when the document is structurally
	// corrupt for its declared format.
	ErrExtractionFailure = errors.New("document text extraction failed")
)

// FormatFromFilename maps a file name to a supported format by extension.
// The boolean is false when the extension is not one of .pdf/.docx/.txt.
func FormatFromFilename(filename string) (Format, bool) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return FormatPDF, true
	case strings.HasSuffix(lower, ".docx"):
		return FormatDOCX, true
	case strings.HasSuffix(lower, ".txt"):
		return FormatPlainText, true
	default:
		return "", false
	}
}

// ExtractText converts a raw document into a single text blob. Pages (PDF)
// and paragraphs (DOCX) are joined with newlines so content from different
// structural units never runs together. Plain text is decoded as UTF-8,
// discarding invalid byte sequences rather than failing.
func ExtractText(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	case FormatPlainText:
		return strings.ToValidUTF8(string(data), ""), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", ErrExtractionFailure, err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("%w: read page %d: %v", ErrExtractionFailure, i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}

var docxTextRun = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open docx: %v", ErrExtractionFailure, err)
	}
	defer doc.Close()

	// GetContent returns the raw document.xml.
	return docxContentToText(doc.Editable().GetContent()), nil
}

// docxContentToText flattens document.xml into plain text. Paragraph
// boundaries are </w:p> closes; only <w:t> runs carry visible text. Empty
// paragraphs stay as empty lines.
func docxContentToText(content string) string {
	var b strings.Builder
	paragraphs := strings.Split(content, "</w:p>")
	for i, p := range paragraphs {
		// The tail after the last paragraph close is body/section XML,
		// never paragraph content.
		if i == len(paragraphs)-1 {
			break
		}
		for _, run := range docxTextRun.FindAllStringSubmatch(p, -1) {
			b.WriteString(xmlEntities.Replace(run[1]))
		}
		b.WriteString("\n")
	}

	return b.String()
}
