package extract

import (
	"bytes"
	"sort"
)

// Extractor converts one document's raw bytes into plain text.
//
// The input is a fully-buffered, seekable byte reader holding the whole
// file; there is no streaming extraction. Extraction is lossy and
// format-specific on purpose - downstream consumers need flat text for
// indexing, not structural fidelity.
type Extractor interface {
	Extract(r *bytes.Reader) (string, error)
}

// rules maps a lower-cased file extension (without dot) to its extractor.
// The set of supported extensions is fixed.
var rules = map[string]Extractor{
	"pdf":  PDF{},
	"docx": Word{},
	"xlsx": Excel{},
	"xlsm": Excel{},
	"pptx": PowerPoint{},
	"txt":  Plain{},
	"html": Plain{},
	"md":   Plain{},
	"csv":  Plain{},
}

// Lookup returns the extractor registered for ext (lower-cased, without
// leading dot).
func Lookup(ext string) (Extractor, bool) {
	e, ok := rules[ext]
	return e, ok
}

// Supported reports whether ext has a registered extractor.
func Supported(ext string) bool {
	_, ok := rules[ext]
	return ok
}

// Extensions returns the supported extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(rules))
	for ext := range rules {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Text extracts plain text from data based on ext. An extension without a
// registered extractor yields ("", nil) - no text available is not an
// error.
func Text(ext string, data []byte) (string, error) {
	e, ok := rules[ext]
	if !ok {
		return "", nil
	}
	return e.Extract(bytes.NewReader(data))
}
