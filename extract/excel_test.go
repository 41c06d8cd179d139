package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, build func(f *excelize.File)) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	build(f)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestExcel_Extract(t *testing.T) {
	data := workbookBytes(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "x"))
		require.NoError(t, f.SetCellValue("Sheet1", "B1", "y"))
	})

	text, err := Text("xlsx", data)
	require.NoError(t, err)

	// Sheet name on its own line, then the row's cells concatenated.
	require.True(t, strings.HasPrefix(text, "Sheet1\nxy\n"), "got %q", text)
}

func TestExcel_Extract_RowsAndSheets(t *testing.T) {
	data := workbookBytes(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "a"))
		require.NoError(t, f.SetCellValue("Sheet1", "B1", 1))
		require.NoError(t, f.SetCellValue("Sheet1", "A2", "b"))

		_, err := f.NewSheet("Totals")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Totals", "A1", 42))
	})

	text, err := Text("xlsx", data)
	require.NoError(t, err)

	require.Contains(t, text, "Sheet1\na1\nb\n")
	require.Contains(t, text, "Totals\n42\n")
	require.Less(t, strings.Index(text, "Sheet1"), strings.Index(text, "Totals"))
}

func TestExcel_Extract_XLSMDispatch(t *testing.T) {
	data := workbookBytes(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "macro"))
	})

	// xlsm routes to the same workbook rule.
	text, err := Text("xlsm", data)
	require.NoError(t, err)
	require.Contains(t, text, "macro")
}

func TestExcel_Extract_NotAWorkbook(t *testing.T) {
	_, err := Text("xlsx", []byte("garbage"))
	require.Error(t, err)
}
