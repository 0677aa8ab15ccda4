package domain

// GroupCount is one bucket of a frequency tally over a sheet column.
// Blank cells are reported under the label "Unknown".
type GroupCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BookingsSummary is the response body of the bookings summary view.
//
// Sold and Unsold count rows whose status equals "sold" or "unsold"
// (case-insensitive, trimmed). Rows with any other status are counted in
// TotalBookings only, so Sold+Unsold never exceeds TotalBookings.
type BookingsSummary struct {
	Period        string       `json:"period"`
	TotalBookings int          `json:"total_bookings"`
	Sold          int          `json:"sold"`
	Unsold        int          `json:"unsold"`
	ByCluster     []GroupCount `json:"by_cluster"`
}

// BookingList carries raw sheet rows. Each row is serialised as the
// header -> cell mapping read from the sheet.
type BookingList struct {
	Count    int                 `json:"count"`
	Bookings []map[string]string `json:"bookings"`
}

// BookingQuery narrows the bookings list. Empty fields do not filter.
type BookingQuery struct {
	Cluster string
	Status  string
	// Period is applied only when non-empty.
	Period string
}

// LoanStatus tallies financing institutions and loan progress.
type LoanStatus struct {
	TotalRecords int          `json:"total_records"`
	FinancedBy   []GroupCount `json:"financed_by"`
	LoanStatus   []GroupCount `json:"loan_status"`
}

// DemandEntry projects the columns relevant to payment demands for one unit.
// Monetary columns are parsed; the remaining columns are passed through as
// written in the sheet.
type DemandEntry struct {
	Cluster             string  `json:"cluster"`
	UnitNo              string  `json:"unit_no"`
	CustomerName        string  `json:"customer_name"`
	BookingDate         string  `json:"booking_date"`
	SaleAgreementStatus string  `json:"sale_agreement_status"`
	DemandPercent       string  `json:"demand_percent"`
	DemandValue         float64 `json:"demand_value"`
	PendingDemand       float64 `json:"pending_demand"`
	Receivables         float64 `json:"receivables"`
}

// DemandDetails is the response body of the demand view.
type DemandDetails struct {
	Count   int           `json:"count"`
	Entries []DemandEntry `json:"entries"`
}
