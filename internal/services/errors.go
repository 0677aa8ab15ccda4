package services

import "errors"

// Report service errors
var (
	// ErrMissingLookupKey is returned by customer lookup without a mobile
	// number or a unit number.
	ErrMissingLookupKey = errors.New("mobile or unit query parameter is required")

	// ErrUnsupportedFormat is returned for export formats other than csv
	// and xlsx.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
