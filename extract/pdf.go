package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF runs a layout text extraction over the whole document and
// concatenates all extracted text.
type PDF struct{}

// Extract implements Extractor.
func (PDF) Extract(r *bytes.Reader) (string, error) {
	doc, err := pdf.NewReader(r, r.Size())
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	text, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, text); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return sb.String(), nil
}
