package parser

import (
	"github.com/statetax/taxingest-go/pkg/taxingest/models"
)

// Block is a contiguous group of rows belonging to one state's entry.
// Code is empty when the first row's name did not resolve (header rows
// above the first state, or an unrecognized name); the caller decides how
// to key such blocks.
type Block struct {
	Code string
	Rows []models.Row
}

// Segment splits a worksheet into per-state row blocks, in row order.
//
// The scan is a two-state machine: seeking a state-start row versus
// accumulating the current block. A row whose name column resolves to a
// state code starts a new block and flushes the accumulated one; any other
// row is a continuation. The trailing notes footer is recognized by its
// merged region: the cell in the single-rate column becomes a merge
// continuation once the footer text spans the table, and no rows at or
// past that point belong to any state.
func Segment(sheet *models.Sheet, layout Layout) []Block {
	var blocks []Block
	var current []models.Row

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, Block{
			Code: StateCode(current[0][layout.State].Text()),
			Rows: current,
		})
	}

	for _, row := range sheet.Rows {
		if len(row) > layout.SingleRate && row[layout.SingleRate].Merged {
			break
		}
		if StateCode(row[layout.State].Text()) != "" {
			flush()
			current = []models.Row{row}
		} else {
			current = append(current, row)
		}
	}
	flush()
	return blocks
}
