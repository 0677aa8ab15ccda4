// Package dataset turns the raw cell grid of a sheet into records and
// provides the filtering and aggregation used by the report views.
//
// A Dataset is built fresh for every request and never mutated after
// construction: filters return new Datasets that share the header set and
// the resolved column names of their parent.
//
// Header text drifts between sheet versions, so logical fields are mapped
// to actual headers at load time through a Catalog: an exact match on the
// normalised label wins, then the first header containing the label, then
// the catalog's static default header.
package dataset
