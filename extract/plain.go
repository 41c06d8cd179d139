package extract

import (
	"bytes"
	"io"
)

// Plain extracts text, markup, markdown and CSV files verbatim, decoded as
// UTF-8.
type Plain struct{}

// Extract returns the buffer's contents as a string.
func (Plain) Extract(r *bytes.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
