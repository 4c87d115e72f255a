// Package workbook loads xlsx files into typed cell grids.
//
// It is the only package that touches the spreadsheet library; everything
// downstream works on models.Sheet grids with per-cell merge flags.
package workbook

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/statetax/taxingest-go/pkg/taxingest/models"
)

// Load reads an xlsx workbook into a models.Workbook.
// Every cell inside a merged region other than the region's top-left anchor
// is flagged as a merge continuation and carries no value. Rows within a
// sheet are padded to a uniform column count.
func Load(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	wb := &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]*models.Sheet),
	}
	for _, name := range f.GetSheetList() {
		sheet, err := loadSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		wb.SheetNames = append(wb.SheetNames, name)
		wb.Sheets[name] = sheet
	}
	return wb, nil
}

func loadSheet(f *excelize.File, name string) (*models.Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	sheet := &models.Sheet{Name: name}
	for _, raw := range rows {
		row := make(models.Row, width)
		for col, value := range raw {
			if value == "" {
				continue
			}
			row[col] = models.Cell{Value: parseValue(value)}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	if err := markMergeContinuations(f, name, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

// markMergeContinuations flags every cell of each merged region except its
// top-left anchor. The anchor keeps the region's value; continuations are
// cleared so they read as empty.
func markMergeContinuations(f *excelize.File, name string, sheet *models.Sheet) error {
	regions, err := f.GetMergeCells(name)
	if err != nil {
		return err
	}
	for _, region := range regions {
		c1, r1, err := excelize.CellNameToCoordinates(region.GetStartAxis())
		if err != nil {
			return err
		}
		c2, r2, err := excelize.CellNameToCoordinates(region.GetEndAxis())
		if err != nil {
			return err
		}
		for r := r1; r <= r2; r++ {
			for c := c1; c <= c2; c++ {
				if r == r1 && c == c1 {
					continue
				}
				if r-1 < len(sheet.Rows) && c-1 < len(sheet.Rows[r-1]) {
					sheet.Rows[r-1][c-1] = models.Cell{Merged: true}
				}
			}
		}
	}
	return nil
}

// parseValue types a raw cell string: int64 first, then float64, else the
// original text.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
