package models

import "encoding/json"

// DeductionEntry is a normalized deduction or exemption figure.
type DeductionEntry struct {
	// Value is nil when the source cell was empty or "N/A", a number when
	// the cell held one, or the original text when the publication left a
	// descriptive entry in place of a figure.
	Value any `json:"value"`
	// Credit is true when the amount is a tax credit rather than a
	// deduction from taxable income.
	Credit bool `json:"credit"`
}

// BracketRow is one rung of a filing-status rate ladder.
type BracketRow struct {
	Rate       any `json:"rate"`
	StartValue any `json:"start_value"`
}

// StandardDeductions holds the per-filing-status standard deduction figures.
type StandardDeductions struct {
	Single  DeductionEntry `json:"single"`
	Married DeductionEntry `json:"married"`
}

// PersonalExemptions holds the per-person personal exemption figures.
type PersonalExemptions struct {
	Single    DeductionEntry `json:"single"`
	Married   DeductionEntry `json:"married"`
	Dependant DeductionEntry `json:"dependant"`
}

// StateRecord is the normalized per-state, per-year record.
// Single and Married always have equal length; both are empty for states
// without a graduated rate table.
type StateRecord struct {
	Single             []BracketRow       `json:"single"`
	Married            []BracketRow       `json:"married"`
	StandardDeductions StandardDeductions `json:"standard_deductions"`
	PersonalExemptions PersonalExemptions `json:"personal_exemptions"`
	Notes              []string           `json:"notes"`
	NoteCodes          []string           `json:"note_codes"`
}

// MarshalJSON emits empty bracket and note lists as [] rather than null.
func (r StateRecord) MarshalJSON() ([]byte, error) {
	type alias StateRecord
	a := alias(r)
	if a.Single == nil {
		a.Single = []BracketRow{}
	}
	if a.Married == nil {
		a.Married = []BracketRow{}
	}
	if a.Notes == nil {
		a.Notes = []string{}
	}
	if a.NoteCodes == nil {
		a.NoteCodes = []string{}
	}
	return json.Marshal(a)
}
