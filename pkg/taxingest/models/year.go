package models

import (
	"bytes"
	"encoding/json"
)

// YearResult maps state codes to records for a single year sheet.
// Iteration and JSON key order follow insertion order, which matches sheet
// row order. Re-adding an existing code replaces the record but keeps the
// original position.
type YearResult struct {
	codes   []string
	records map[string]StateRecord
}

// NewYearResult returns an empty YearResult.
func NewYearResult() *YearResult {
	return &YearResult{records: make(map[string]StateRecord)}
}

// Add inserts or replaces the record for code.
func (y *YearResult) Add(code string, rec StateRecord) {
	if _, ok := y.records[code]; !ok {
		y.codes = append(y.codes, code)
	}
	y.records[code] = rec
}

// Get returns the record for code.
func (y *YearResult) Get(code string) (StateRecord, bool) {
	rec, ok := y.records[code]
	return rec, ok
}

// Codes returns the state codes in insertion order.
func (y *YearResult) Codes() []string {
	return y.codes
}

// Len returns the number of states recorded.
func (y *YearResult) Len() int {
	return len(y.codes)
}

// MarshalJSON writes the mapping as a JSON object in insertion order.
func (y *YearResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range y.codes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(y.records[code])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Dataset maps a year label to that year's per-state results.
type Dataset map[string]*YearResult
