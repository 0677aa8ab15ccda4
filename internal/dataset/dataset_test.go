package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{" Booking Date ", "Cluster", "", "Unit No"},
		{"01/02/2024", "Palm", "ignored", "A-101", "extra"},
		{"05/02/2024", "Oak"},
	}

	ds := FromRows(rows, 1, DefaultCatalog())

	assert.Equal(t, []string{"Booking Date", "Cluster", "", "Unit No"}, ds.Headers)
	require.Equal(t, 2, ds.Len())

	first := ds.Records[0].Raw()
	assert.Equal(t, map[string]string{
		"Booking Date": "01/02/2024",
		"Cluster":      "Palm",
		"Unit No":      "A-101",
	}, first)
	assert.NotContains(t, first, "")

	assert.Equal(t, "", ds.Records[1].Get(FieldUnitNo), "short rows pad with empty strings")
	assert.Contains(t, ds.Records[1].Raw(), "Unit No")
}

func TestFromRowsHeaderRow(t *testing.T) {
	rows := [][]string{
		{"Bookings register FY24"},
		{"Cluster", "Status"},
		{"Palm", "Sold"},
	}

	ds := FromRows(rows, 2, nil)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Palm", ds.Records[0].Get(FieldCluster))
	assert.Equal(t, "Sold", ds.Records[0].Get(FieldStatus))
}

func TestFromRowsEmpty(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		headerRow int
	}{
		{"no rows", nil, 1},
		{"header row past end", [][]string{{"Cluster"}}, 3},
		{"header only", [][]string{{"Cluster"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := FromRows(tt.rows, tt.headerRow, DefaultCatalog())
			assert.Equal(t, 0, ds.Len())
			assert.Equal(t, "Cluster", ds.Resolve(FieldCluster))
			assert.Empty(t, ds.GroupCount(FieldCluster))
		})
	}
}

func TestDuplicateHeadersRightMostWins(t *testing.T) {
	rows := [][]string{
		{"Status", "Cluster", "Status "},
		{"old", "Palm", "Sold"},
	}

	ds := FromRows(rows, 1, DefaultCatalog())

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Sold", ds.Records[0].Value("Status"))
	assert.Equal(t, "Sold", ds.Records[0].Get(FieldStatus))
}

func TestResolve(t *testing.T) {
	headers := []string{
		"Booking  Date",
		"Cluster Name",
		"Unit No.",
		"Status",
		"Sale Agreement Status",
		"SALE PRICE",
	}
	ds := FromRows([][]string{headers}, 1, DefaultCatalog())

	tests := []struct {
		field Field
		want  string
	}{
		{FieldBookingDate, "Booking  Date"},
		{FieldCluster, "Cluster Name"},
		{FieldUnitNo, "Unit No."},
		{FieldStatus, "Status"},
		{FieldSaleAgreementStatus, "Sale Agreement Status"},
		{FieldSalePrice, "SALE PRICE"},
		{FieldReceivables, "Receivables"},
		{FieldLoanStatus, "Loan Status"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			assert.Equal(t, tt.want, ds.Resolve(tt.field))
		})
	}
}

func TestResolveWithCatalogOverride(t *testing.T) {
	catalog, err := DefaultCatalog().With(map[string]ColumnSpec{
		"mobile":      {Label: "contact"},
		"financed_by": {Header: "Bank"},
	})
	require.NoError(t, err)

	ds := FromRows([][]string{{"Primary Contact", "Bank"}, {"98450 12345", "HDFC"}}, 1, catalog)

	assert.Equal(t, "Primary Contact", ds.Resolve(FieldMobile))
	assert.Equal(t, "Bank", ds.Resolve(FieldFinancedBy))
	assert.Equal(t, "HDFC", ds.Records[0].Get(FieldFinancedBy))
	assert.Equal(t, "financed by", catalog[FieldFinancedBy].Label)
}

func TestCatalogWithUnknownField(t *testing.T) {
	_, err := DefaultCatalog().With(map[string]ColumnSpec{"floor": {Header: "Floor"}})
	assert.Error(t, err)
}

func TestCatalogCoversEveryField(t *testing.T) {
	catalog := DefaultCatalog()
	for _, f := range Fields() {
		spec, ok := catalog[f]
		assert.True(t, ok, f)
		assert.NotEmpty(t, spec.Label, f)
		assert.NotEmpty(t, spec.Header, f)

		parsed, ok := ParseField(string(f))
		assert.True(t, ok)
		assert.Equal(t, f, parsed)
	}
}

func TestRecordMarshalJSON(t *testing.T) {
	ds := FromRows([][]string{{"Cluster", "Unit No"}, {"Palm", "A-1"}}, 1, nil)

	b, err := json.Marshal(ds.Records[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"Cluster":"Palm","Unit No":"A-1"}`, string(b))

	b, err = json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}
