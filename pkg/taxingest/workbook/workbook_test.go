package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestFile(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "Alabama"))
	require.NoError(t, f.SetCellValue(sheet, "B1", 100))
	require.NoError(t, f.SetCellValue(sheet, "C1", 2.5))
	require.NoError(t, f.SetCellValue(sheet, "A2", "none"))
	require.NoError(t, f.MergeCell(sheet, "A2", "C2"))
	require.NoError(t, f.SetCellValue(sheet, "D3", "wide row"))

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	wb, err := Load(newTestFile(t))
	require.NoError(t, err)

	assert.Equal(t, "test.xlsx", wb.BookName)
	require.Contains(t, wb.SheetNames, "Sheet1")

	sheet := wb.Sheets["Sheet1"]
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rows, 3)

	// Typed values.
	assert.Equal(t, "Alabama", sheet.Rows[0][0].Value)
	assert.Equal(t, int64(100), sheet.Rows[0][1].Value)
	assert.Equal(t, 2.5, sheet.Rows[0][2].Value)

	// Merged region: anchor keeps the value, continuations are flagged.
	assert.Equal(t, "none", sheet.Rows[1][0].Value)
	assert.False(t, sheet.Rows[1][0].Merged)
	assert.True(t, sheet.Rows[1][1].Merged)
	assert.True(t, sheet.Rows[1][2].Merged)
	assert.True(t, sheet.Rows[1][1].IsEmpty())

	// Rows are padded to the sheet's widest row.
	for _, row := range sheet.Rows {
		assert.Len(t, row, 4)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
