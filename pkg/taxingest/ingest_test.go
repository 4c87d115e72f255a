package taxingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/statetax/taxingest-go/pkg/taxingest/models"
)

// writeYearSheet fills a sheet with a header row, a two-rung Maryland block,
// an Alaska special-case block, and a merged notes footer, mirroring the
// publication layout.
func writeYearSheet(t *testing.T, f *excelize.File, sheet string) {
	t.Helper()

	set := func(cell string, v any) {
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}

	set("A1", "State")
	set("H1", "Single")

	set("A2", "Maryland (a, e)")
	set("B2", 0.02)
	set("D2", 0)
	set("E2", 0.02)
	set("G2", 0)
	set("H2", 2400)
	set("I2", 4850)
	set("J2", 3200)
	set("K2", 3200)
	set("L2", 3200)
	set("M2", "First note")

	set("B3", 0.03)
	set("D3", 1000)
	set("E3", 0.03)
	set("G3", 1000)
	set("N3", "Second note")

	set("A4", "Alaska")
	set("B4", "none")
	require.NoError(t, f.MergeCell(sheet, "B4", "G4"))

	// Row 5 left empty: a spacer row inside the Alaska block.

	set("A6", "(a) Footnote text.")
	require.NoError(t, f.MergeCell(sheet, "A6", "N6"))

	set("A7", "Arizona") // past the footer, must never be parsed
}

func newTestWorkbook(t *testing.T, sheets ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for _, sheet := range sheets {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		writeYearSheet(t, f, sheet)
	}

	path := filepath.Join(t.TempDir(), "taxes.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestIngestMostRecentYearOnly(t *testing.T) {
	path := newTestWorkbook(t, "2023", "2022")

	dataset, err := Ingest(path, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, dataset, 1)
	year := dataset["2023"]
	require.NotNil(t, year, "only the most recent year sheet is processed")

	// Header rows above Maryland key under "", then states in row order.
	assert.Equal(t, []string{"", "MD", "AK"}, year.Codes())

	md, ok := year.Get("MD")
	require.True(t, ok)
	assert.Equal(t, []models.BracketRow{
		{Rate: 0.02, StartValue: int64(0)},
		{Rate: 0.03, StartValue: int64(1000)},
	}, md.Single)
	assert.Equal(t, md.Single, md.Married)
	assert.Equal(t, models.DeductionEntry{Value: int64(2400)}, md.StandardDeductions.Single)
	assert.Equal(t, models.DeductionEntry{Value: int64(4850)}, md.StandardDeductions.Married)
	assert.Equal(t, models.DeductionEntry{Value: int64(3200)}, md.PersonalExemptions.Single)
	assert.Equal(t, models.DeductionEntry{Value: int64(3200)}, md.PersonalExemptions.Married)
	assert.Equal(t, models.DeductionEntry{Value: int64(3200)}, md.PersonalExemptions.Dependant)
	assert.Equal(t, []string{"First note", "Second note"}, md.Notes)
	assert.Equal(t, []string{"a", "e"}, md.NoteCodes)

	ak, ok := year.Get("AK")
	require.True(t, ok)
	assert.Empty(t, ak.Single)
	assert.Empty(t, ak.Married)
	assert.Equal(t, []string{"none"}, ak.Notes)

	_, ok = year.Get("AZ")
	assert.False(t, ok, "rows past the notes footer belong to no state")
}

func TestIngestAllYears(t *testing.T) {
	path := newTestWorkbook(t, "2023", "2022")

	dataset, err := Ingest(path, Options{AllYears: true})
	require.NoError(t, err)

	require.Len(t, dataset, 2)
	require.NotNil(t, dataset["2023"])
	require.NotNil(t, dataset["2022"])
}

func TestIngestNoYearSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := Ingest(path, DefaultOptions())
	require.ErrorIs(t, err, ErrNoYearSheets)
	assert.Contains(t, err.Error(), "Sheet1")
}

func TestIngestMissingFile(t *testing.T) {
	_, err := Ingest(filepath.Join(t.TempDir(), "absent.xlsx"), DefaultOptions())
	require.Error(t, err)
}

func TestYearSheetNames(t *testing.T) {
	names := yearSheetNames([]string{"Sheet1", "2021", "notes", "2023", "2022", "1999", "20x1"})
	assert.Equal(t, []string{"20x1", "2023", "2022", "2021"}, names)
}
