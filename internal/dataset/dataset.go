package dataset

import (
	"strings"

	"bookingdesk/internal/normalize"
)

// Dataset is an ordered set of records sharing one header row.
type Dataset struct {
	Headers []string
	Records []Record

	catalog Catalog
	columns map[Field]string
}

// FromRows builds a Dataset from a raw cell grid. headerRow is 1-based;
// rows above it are ignored and values below 1 are treated as 1. A grid
// shorter than headerRow yields an empty Dataset.
//
// Blank header cells do not become keys. When two headers trim to the same
// text, the right-most column wins.
func FromRows(rows [][]string, headerRow int, catalog Catalog) *Dataset {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if headerRow < 1 {
		headerRow = 1
	}

	ds := &Dataset{catalog: catalog}
	if len(rows) < headerRow {
		ds.columns = resolveColumns(nil, catalog)
		return ds
	}

	header := rows[headerRow-1]
	ds.Headers = make([]string, len(header))
	for i, h := range header {
		ds.Headers[i] = strings.TrimSpace(h)
	}
	ds.columns = resolveColumns(ds.Headers, catalog)

	data := rows[headerRow:]
	ds.Records = make([]Record, 0, len(data))
	for _, row := range data {
		raw := make(map[string]string, len(ds.Headers))
		for i, h := range ds.Headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				raw[h] = row[i]
			} else {
				raw[h] = ""
			}
		}
		ds.Records = append(ds.Records, Record{raw: raw, columns: ds.columns})
	}
	return ds
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Resolve returns the header text a logical field maps to in this dataset.
func (d *Dataset) Resolve(f Field) string {
	if h, ok := d.columns[f]; ok {
		return h
	}
	return d.catalog.Spec(f).Header
}

// Rows returns the raw mapping of every record in order.
func (d *Dataset) Rows() []map[string]string {
	out := make([]map[string]string, len(d.Records))
	for i, r := range d.Records {
		out[i] = r.raw
	}
	return out
}

func (d *Dataset) derive(records []Record) *Dataset {
	return &Dataset{
		Headers: d.Headers,
		Records: records,
		catalog: d.catalog,
		columns: d.columns,
	}
}

func resolveColumns(headers []string, catalog Catalog) map[Field]string {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalize.NormalizeLabel(h)
	}

	columns := make(map[Field]string, len(allFields))
	for _, f := range allFields {
		columns[f] = resolveHeader(headers, normalized, catalog.Spec(f))
	}
	return columns
}

// resolveHeader picks the header for one spec: exact normalised match,
// then substring match, then the static default. Ties go to the right-most
// exact match so lookups agree with the record keys.
func resolveHeader(headers, normalized []string, spec ColumnSpec) string {
	label := normalize.NormalizeLabel(spec.Label)
	if label != "" {
		exact := -1
		for i, h := range normalized {
			if headers[i] != "" && h == label {
				exact = i
			}
		}
		if exact >= 0 {
			return headers[exact]
		}
		for i, h := range normalized {
			if headers[i] != "" && strings.Contains(h, label) {
				return headers[i]
			}
		}
	}
	return spec.Header
}
