package taxingest

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/statetax/taxingest-go/pkg/taxingest/models"
	"github.com/statetax/taxingest-go/pkg/taxingest/parser"
	"github.com/statetax/taxingest-go/pkg/taxingest/workbook"
)

// Ingest reads the source workbook and assembles the year → state → record
// dataset.
//
// Sheets are selected by name: exactly four characters starting with "20".
// Candidates are processed most recent first; unless opts.AllYears is set,
// only the single most recent sheet is processed. A workbook with no
// year-named sheet fails with ErrNoYearSheets.
func Ingest(path string, opts Options) (models.Dataset, error) {
	wb, err := workbook.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("file read, processing", slog.String("book", wb.BookName))

	names := yearSheetNames(wb.SheetNames)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w (expected to be years); worksheets: %s",
			ErrNoYearSheets, strings.Join(wb.SheetNames, ", "))
	}

	layout := opts.EffectiveLayout()
	results := make(models.Dataset)
	for _, name := range names {
		slog.Info("processing sheet", slog.String("sheet", name))
		year, err := processSheet(wb.Sheets[name], layout)
		if err != nil {
			return nil, &SheetError{SheetName: name, Err: err}
		}
		results[name] = year
		if !opts.AllYears {
			break
		}
	}
	return results, nil
}

// yearSheetNames filters sheet names that look like years and orders them
// most recent first.
func yearSheetNames(names []string) []string {
	var years []string
	for _, name := range names {
		if len(name) == 4 && strings.HasPrefix(name, "20") {
			years = append(years, name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

func processSheet(sheet *models.Sheet, layout parser.Layout) (*models.YearResult, error) {
	year := models.NewYearResult()
	for _, block := range parser.Segment(sheet, layout) {
		rec, err := parser.ExtractState(block, layout)
		if err != nil {
			return nil, err
		}
		if block.Code == "" {
			// Known data-quality gap: unresolvable names share the ""
			// key and the last such block wins.
			slog.Warn("unresolved state name",
				slog.String("sheet", sheet.Name),
				slog.String("name", block.Rows[0][layout.State].Text()))
		}
		year.Add(block.Code, rec)
	}
	if rec, ok := year.Get("MD"); ok {
		slog.Debug("reference state parsed",
			slog.String("sheet", sheet.Name), slog.Any("record", rec))
	}
	return year, nil
}
