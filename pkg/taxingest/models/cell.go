// Package models defines data structures for tax table ingestion.
package models

import (
	"fmt"
	"strconv"
)

// Cell is a single grid position.
type Cell struct {
	// Value is the typed cell content: nil (empty), int64, float64, or string.
	Value any
	// Merged is true when the cell is part of a merged region but not its
	// top-left anchor. Such cells carry no independent value.
	Merged bool
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	if c.Value == nil {
		return true
	}
	if s, ok := c.Value.(string); ok {
		return s == ""
	}
	return false
}

// Text renders the cell value as a string. Empty cells render as "".
func (c Cell) Text() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Row is an ordered sequence of cells. Within a sheet every row has the
// same column count.
type Row []Cell

// Sheet is a named 2-D grid of cells.
type Sheet struct {
	Name string
	Rows []Row
}

// Workbook is the loaded source file: named sheets in workbook order.
type Workbook struct {
	BookName   string
	SheetNames []string
	Sheets     map[string]*Sheet
}
