package dataset

import (
	"fmt"
	"strings"
)

// Field is a logical column the reports know about.
type Field string

const (
	FieldBookingDate         Field = "booking_date"
	FieldCluster             Field = "cluster"
	FieldUnitNo              Field = "unit_no"
	FieldCustomerName        Field = "customer_name"
	FieldMobile              Field = "mobile"
	FieldStatus              Field = "status"
	FieldSaleAgreementStatus Field = "sale_agreement_status"
	FieldSalePrice           Field = "sale_price"
	FieldGrossSaleValue      Field = "gross_sale_value_without_gst"
	FieldGrossAmountReceived Field = "gross_amount_received"
	FieldPendingDemand       Field = "pending_demand"
	FieldReceivables         Field = "receivables"
	FieldFinancedBy          Field = "financed_by"
	FieldLoanStatus          Field = "loan_status"
	FieldDemandPercent       Field = "demand_percent"
	FieldDemandValue         Field = "demand_value"
)

var allFields = []Field{
	FieldBookingDate,
	FieldCluster,
	FieldUnitNo,
	FieldCustomerName,
	FieldMobile,
	FieldStatus,
	FieldSaleAgreementStatus,
	FieldSalePrice,
	FieldGrossSaleValue,
	FieldGrossAmountReceived,
	FieldPendingDemand,
	FieldReceivables,
	FieldFinancedBy,
	FieldLoanStatus,
	FieldDemandPercent,
	FieldDemandValue,
}

// Fields returns every logical field in catalog order.
func Fields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// ParseField maps a field name such as "sale_price" to its Field.
func ParseField(name string) (Field, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range allFields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// ColumnSpec describes how a logical field is located in the header row.
type ColumnSpec struct {
	// Label is the nominal name used for fuzzy matching.
	Label string `yaml:"label" json:"label"`
	// Header is used verbatim when no header matches Label.
	Header string `yaml:"header" json:"header"`
}

// Catalog maps every logical field to its column spec.
type Catalog map[Field]ColumnSpec

// DefaultCatalog returns the built-in column catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		FieldBookingDate:         {Label: "booking date", Header: "Booking Date"},
		FieldCluster:             {Label: "cluster", Header: "Cluster"},
		FieldUnitNo:              {Label: "unit no", Header: "Unit No"},
		FieldCustomerName:        {Label: "customer name", Header: "Customer Name"},
		FieldMobile:              {Label: "mobile", Header: "Mobile No"},
		FieldStatus:              {Label: "status", Header: "Status"},
		FieldSaleAgreementStatus: {Label: "sale agreement status", Header: "Sale Agreement Status"},
		FieldSalePrice:           {Label: "sale price", Header: "Sale Price"},
		FieldGrossSaleValue:      {Label: "gross sale value without gst", Header: "Gross Sale Value Without GST"},
		FieldGrossAmountReceived: {Label: "gross amount received", Header: "Gross Amount Received"},
		FieldPendingDemand:       {Label: "pending demand", Header: "Pending Demand"},
		FieldReceivables:         {Label: "receivables", Header: "Receivables"},
		FieldFinancedBy:          {Label: "financed by", Header: "Financed By"},
		FieldLoanStatus:          {Label: "loan status", Header: "Loan Status"},
		FieldDemandPercent:       {Label: "demand %", Header: "Demand %"},
		FieldDemandValue:         {Label: "demand value", Header: "Demand Value"},
	}
}

// With returns a copy of c with the given overrides applied. Overrides are
// keyed by field name; blank label or header values keep the current entry.
func (c Catalog) With(overrides map[string]ColumnSpec) (Catalog, error) {
	out := make(Catalog, len(c))
	for f, spec := range c {
		out[f] = spec
	}
	for name, spec := range overrides {
		f, ok := ParseField(name)
		if !ok {
			return nil, fmt.Errorf("unknown column field %q", name)
		}
		cur := out[f]
		if s := strings.TrimSpace(spec.Label); s != "" {
			cur.Label = s
		}
		if s := strings.TrimSpace(spec.Header); s != "" {
			cur.Header = s
		}
		out[f] = cur
	}
	return out, nil
}

// Spec returns the column spec of f. Fields missing from the catalog fall
// back to the built-in entry.
func (c Catalog) Spec(f Field) ColumnSpec {
	if spec, ok := c[f]; ok {
		return spec
	}
	return DefaultCatalog()[f]
}
