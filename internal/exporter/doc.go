// Package exporter writes booking rows as downloadable spreadsheets.
//
// A Table carries the sheet's headers in their original order together with
// the row values under them. It can be written as CSV (with a UTF-8 BOM so
// Excel detects the encoding) or as a single-tab XLSX workbook.
//
// Example usage:
//
//	table := exporter.FromDataset(ds)
//	if err := exporter.Write(w, exporter.FormatXLSX, table); err != nil {
//		return err
//	}
package exporter
