package exporter

import (
	"bookingdesk/internal/dataset"
)

// Table is a header row plus value rows ready to be written.
type Table struct {
	Headers []string
	Rows    [][]string
}

// FromDataset keeps the sheet column order. Blank headers are dropped and a
// repeated header appears once, in its first position.
func FromDataset(ds *dataset.Dataset) Table {
	seen := make(map[string]bool, len(ds.Headers))
	headers := make([]string, 0, len(ds.Headers))
	for _, h := range ds.Headers {
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		headers = append(headers, h)
	}

	rows := make([][]string, len(ds.Records))
	for i, rec := range ds.Records {
		row := make([]string, len(headers))
		for j, h := range headers {
			row[j] = rec.Value(h)
		}
		rows[i] = row
	}
	return Table{Headers: headers, Rows: rows}
}
