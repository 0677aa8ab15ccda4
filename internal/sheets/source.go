// Package sheets reads the raw cell grid that backs every report, either from
// the Google Sheets API or from a local workbook, and turns it into a
// dataset.Dataset.
//
// Every call reads the whole configured range. Nothing is cached between
// calls and failed reads are not retried.
package sheets

import (
	"context"

	"bookingdesk/internal/dataset"
)

// Source returns the rectangular range of cell strings of one sheet tab.
// Rows may be ragged; trailing empty cells are usually omitted.
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
	Name() string
}

// Load reads src and builds a Dataset using the header at headerRow.
func Load(ctx context.Context, src Source, headerRow int, catalog dataset.Catalog) (*dataset.Dataset, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.FromRows(rows, headerRow, catalog), nil
}

// Loader binds a Source to the header row and column catalog of the sheet.
type Loader struct {
	source    Source
	headerRow int
	catalog   dataset.Catalog
}

// NewLoader creates a Loader. A nil catalog uses the built-in one.
func NewLoader(source Source, headerRow int, catalog dataset.Catalog) *Loader {
	if catalog == nil {
		catalog = dataset.DefaultCatalog()
	}
	return &Loader{source: source, headerRow: headerRow, catalog: catalog}
}

// Load reads a fresh Dataset.
func (l *Loader) Load(ctx context.Context) (*dataset.Dataset, error) {
	return Load(ctx, l.source, l.headerRow, l.catalog)
}

// SourceName names the underlying source for logs and readiness reports.
func (l *Loader) SourceName() string {
	return l.source.Name()
}
