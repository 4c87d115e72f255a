package parser

import (
	"fmt"

	"github.com/statetax/taxingest-go/pkg/taxingest/models"
)

// ExtractState turns one state's row block into a StateRecord.
//
// The first row carries the deduction and exemption figures and, together
// with the second row when one exists, the trailing note columns and any
// parenthetical footnote codes. Bracket rows come from the whole block
// unless the state has no rate table, signalled by a merged region spanning
// the bracket columns of the first row.
func ExtractState(block Block, layout Layout) (models.StateRecord, error) {
	if len(block.Rows) == 0 {
		return models.StateRecord{}, fmt.Errorf("state block %q: %w", block.Code, ErrMalformedSheet)
	}
	for i, row := range block.Rows {
		if len(row) < layout.minColumns() {
			return models.StateRecord{}, fmt.Errorf("state block %q row %d has %d columns, need %d: %w",
				block.Code, i, len(row), layout.minColumns(), ErrMalformedSheet)
		}
	}
	first := block.Rows[0]

	rec := models.StateRecord{}
	var err error
	if rec.StandardDeductions, rec.PersonalExemptions, err = extractDeductions(first, layout); err != nil {
		return models.StateRecord{}, fmt.Errorf("state block %q: %w", block.Code, err)
	}

	noteRows := block.Rows[:1]
	if len(block.Rows) > 1 {
		noteRows = block.Rows[:2]
	}
	rec.Notes, rec.NoteCodes = extractNotes(noteRows, layout)

	if first[layout.NoTableProbe].Merged {
		// No rate table; the merged cell next to the name explains why
		// (typically "none", no state income tax).
		rec.Notes = append(rec.Notes, first[layout.SingleRate].Text())
		return rec, nil
	}

	for _, row := range block.Rows {
		if !rowHasBracketData(row, layout) {
			continue
		}
		rec.Single = append(rec.Single, models.BracketRow{
			Rate:       row[layout.SingleRate].Value,
			StartValue: row[layout.SingleBracket].Value,
		})
		rec.Married = append(rec.Married, models.BracketRow{
			Rate:       row[layout.MarriedRate].Value,
			StartValue: row[layout.MarriedBracket].Value,
		})
	}
	return rec, nil
}

func extractDeductions(row models.Row, layout Layout) (models.StandardDeductions, models.PersonalExemptions, error) {
	var std models.StandardDeductions
	var exempt models.PersonalExemptions
	for _, f := range []struct {
		col  int
		dest *models.DeductionEntry
	}{
		{layout.StdDedSingle, &std.Single},
		{layout.StdDedMarried, &std.Married},
		{layout.ExemptSingle, &exempt.Single},
		{layout.ExemptMarried, &exempt.Married},
		{layout.ExemptDependant, &exempt.Dependant},
	} {
		entry, err := CleanDeduction(row[f.col].Value)
		if err != nil {
			return std, exempt, err
		}
		*f.dest = entry
	}
	return std, exempt, nil
}

// extractNotes collects the trailing note-column text and the parenthetical
// footnote codes from the given rows, in column-then-row order.
func extractNotes(rows []models.Row, layout Layout) (notes, codes []string) {
	for _, row := range rows {
		for col := layout.NotesStart; col < len(row); col++ {
			if !row[col].IsEmpty() {
				notes = append(notes, row[col].Text())
			}
		}
		codes = append(codes, ExtractCodes(row[layout.State].Value)...)
	}
	return notes, codes
}

// rowHasBracketData reports whether any of the four bracket columns holds a
// value. Spacer rows inside multi-rate states have none and are skipped.
func rowHasBracketData(row models.Row, layout Layout) bool {
	for _, col := range layout.dataColumns() {
		if !row[col].IsEmpty() {
			return true
		}
	}
	return false
}
