// Package parser turns loaded worksheet grids into per-state tax records.
package parser

// Layout fixes the column positions of the known publication format.
// Changing the layout for a future-year format is a one-place edit here.
type Layout struct {
	// State is the state/category display name column.
	State int

	// Bracket table columns, one rate/threshold pair per filing status.
	SingleRate     int
	SingleBracket  int
	MarriedRate    int
	MarriedBracket int

	// Standard deduction columns.
	StdDedSingle  int
	StdDedMarried int

	// Personal exemption columns.
	ExemptSingle    int
	ExemptMarried   int
	ExemptDependant int

	// NotesStart is the first of the trailing free-text note columns.
	NotesStart int

	// NoTableProbe is the column checked for a merge continuation on a
	// state's first row. States without a rate table merge their
	// explanation text across the bracket columns, so this cell is a
	// continuation exactly when the state has no graduated rates.
	NoTableProbe int
}

// DefaultLayout returns the layout of the annual Tax Foundation publication.
func DefaultLayout() Layout {
	return Layout{
		State:           0,
		SingleRate:      1,
		SingleBracket:   3,
		MarriedRate:     4,
		MarriedBracket:  6,
		StdDedSingle:    7,
		StdDedMarried:   8,
		ExemptSingle:    9,
		ExemptMarried:   10,
		ExemptDependant: 11,
		NotesStart:      12,
		NoTableProbe:    2,
	}
}

// dataColumns are the columns that mark a row as carrying bracket data.
func (l Layout) dataColumns() [4]int {
	return [4]int{l.SingleRate, l.SingleBracket, l.MarriedRate, l.MarriedBracket}
}

// minColumns is the narrowest row the extractor can address.
func (l Layout) minColumns() int {
	return l.ExemptDependant + 1
}
