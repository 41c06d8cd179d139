package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel extracts workbook text: for every worksheet in workbook order, the
// sheet name on its own line, then every row top to bottom with its cell
// values concatenated left to right (cells without a value are skipped), a
// newline after each row and a blank line after each sheet.
type Excel struct{}

// Extract implements Extractor.
func (Excel) Extract(r *bytes.Reader) (string, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("parse workbook: %w", err)
	}
	defer book.Close()

	var sb strings.Builder
	for _, sheet := range book.GetSheetList() {
		sb.WriteString(sheet)
		sb.WriteByte('\n')

		rows, err := book.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		for _, row := range rows {
			for _, cell := range row {
				sb.WriteString(cell)
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
