package domain

// RevenueSummary sums the monetary columns over the rows in a period.
// Cells that do not parse contribute zero.
type RevenueSummary struct {
	Period                        string  `json:"period"`
	TotalRecords                  int     `json:"total_records"`
	TotalSalePrice                float64 `json:"total_sale_price"`
	TotalGrossSaleValueWithoutGST float64 `json:"total_gross_sale_value_without_gst"`
	TotalGrossAmountReceived      float64 `json:"total_gross_amount_received"`
	TotalPendingDemand            float64 `json:"total_pending_demand"`
	TotalReceivables              float64 `json:"total_receivables"`
}

// RevenueStats describes the distribution of sale prices in a period.
// Rows with a zero or unparseable sale price are left out of every figure.
type RevenueStats struct {
	Period string  `json:"period"`
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}
