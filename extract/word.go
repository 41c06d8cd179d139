package extract

import (
	"bytes"
	"fmt"
	"strings"
)

// Word extracts the text of every paragraph in document order, concatenated
// with no separator. Half-width and full-width space characters are
// stripped so that semantically contiguous text is not fragmented by
// formatting artifacts.
type Word struct{}

var wordStrip = strings.NewReplacer(" ", "", "　", "")

type wordDocument struct {
	Paragraphs []wordParagraph `xml:"body>p"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	// Text collects the w:t elements of one run in order.
	Text []string `xml:"t"`
}

// Extract implements Extractor.
func (Word) Extract(r *bytes.Reader) (string, error) {
	zr, err := openContainer(r)
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var doc wordDocument
	if err := decodePart(zr, "word/document.xml", &doc); err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var sb strings.Builder
	for _, par := range doc.Paragraphs {
		for _, run := range par.Runs {
			for _, text := range run.Text {
				sb.WriteString(text)
			}
		}
	}
	return wordStrip.Replace(sb.String()), nil
}
