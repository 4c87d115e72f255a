package taxingest

import (
	"errors"
	"fmt"
)

// ErrNoYearSheets indicates the workbook contains no year-named sheet.
var ErrNoYearSheets = errors.New("no year-named worksheets found")

// SheetError represents a failure while processing one worksheet.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("processing sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
