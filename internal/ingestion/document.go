package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError is returned when a document's extension has no
// registered extractor.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q (supported: .txt, .md, .pdf, .docx)", e.Ext)
}

// ExtractFile reads a document from disk and returns its cleaned plain
// text. The extension decides the extractor.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return Extract(filepath.Ext(path), data)
}

// Extract converts raw document bytes to cleaned plain text. ext is the
// file extension including the dot, compared case-insensitively.
func Extract(ext string, data []byte) (string, error) {
	switch strings.ToLower(ext) {
	case ".txt", ".md", ".text":
		return CleanText(string(data)), nil
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case ".docx":
		text, err := extractDocx(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("unreadable pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // a single bad page should not sink the document
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// docxTagRe strips the WordprocessingML markup that GetContent leaves in.
var docxTagRe = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("unreadable docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	return docxTagRe.ReplaceAllString(content, ""), nil
}
