package domain

// CustomerQuery looks up rows by mobile number and/or unit number.
// At least one of the two must be supplied; when both are, a row has to
// match both.
type CustomerQuery struct {
	Mobile string `validate:"required_without=Unit"`
	Unit   string `validate:"required_without=Mobile"`
}

// CustomerList carries the matching raw sheet rows.
type CustomerList struct {
	Count     int                 `json:"count"`
	Customers []map[string]string `json:"customers"`
}

// Readiness reports whether the backing sheet could be read.
type Readiness struct {
	Status  string `json:"status"`
	Source  string `json:"source"`
	Headers int    `json:"headers"`
	Rows    int    `json:"rows"`
}
