package dataset

import (
	"encoding/json"
	"time"

	"bookingdesk/internal/normalize"
)

// Record is one data row keyed by trimmed header text.
type Record struct {
	raw     map[string]string
	columns map[Field]string
}

// Raw returns the header -> cell mapping of the row. The map is shared;
// callers must not modify it.
func (r Record) Raw() map[string]string {
	return r.raw
}

// Value returns the cell under the given header, or "" when absent.
func (r Record) Value(header string) string {
	return r.raw[header]
}

// Get returns the cell of a logical field as written in the sheet.
func (r Record) Get(f Field) string {
	return r.raw[r.columns[f]]
}

// Number parses the cell of f as a number. Unparseable cells are 0.
func (r Record) Number(f Field) float64 {
	return normalize.ParseNumber(r.Get(f))
}

// Date parses the cell of f as a calendar date in loc.
func (r Record) Date(f Field, loc *time.Location) (time.Time, bool) {
	return normalize.ParseDate(r.Get(f), loc)
}

// MarshalJSON serialises the raw row.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.raw)
}
