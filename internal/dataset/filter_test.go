package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func customerSheet() *Dataset {
	return FromRows([][]string{
		{"Cluster", "Unit No", "Customer Name", "Mobile No", "Status"},
		{"Palm Grove", "A-101", "Asha", "+91 98450-12345", "Sold"},
		{"palm grove ", "A-102", "Ravi", "9845099999", "Unsold"},
		{"Oak", "B-201", "Meera", "080 2345 6789", "Sold - registered"},
		{"Oak", " a-101 ", "Kiran", "", ""},
	}, 1, DefaultCatalog())
}

func names(d *Dataset) []string {
	out := make([]string, 0, d.Len())
	for _, r := range d.Records {
		out = append(out, r.Get(FieldCustomerName))
	}
	return out
}

func TestWhere(t *testing.T) {
	ds := customerSheet()

	tests := []struct {
		name  string
		preds []Predicate
		want  []string
	}{
		{"no predicates keeps all", nil, []string{"Asha", "Ravi", "Meera", "Kiran"}},
		{"cluster ignores case and space", []Predicate{ClusterEquals("PALM GROVE")}, []string{"Asha", "Ravi"}},
		{"cluster is exact", []Predicate{ClusterEquals("Palm")}, []string{}},
		{"status substring", []Predicate{StatusContains("sold")}, []string{"Asha", "Ravi", "Meera"}},
		{"status substring narrower", []Predicate{StatusContains("Regis")}, []string{"Meera"}},
		{"mobile digits only", []Predicate{MobileContains("98450 12345")}, []string{"Asha"}},
		{"mobile partial", []Predicate{MobileContains("98450")}, []string{"Asha", "Ravi"}},
		{"mobile without digits matches nothing", []Predicate{MobileContains("abc")}, []string{}},
		{"unit exact ignoring case", []Predicate{UnitEquals("A-101")}, []string{"Asha", "Kiran"}},
		{"predicates combine", []Predicate{UnitEquals("a-101"), MobileContains("98450")}, []string{"Asha"}},
		{"cluster and status", []Predicate{ClusterEquals("oak"), StatusContains("sold")}, []string{"Meera"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(ds.Where(tt.preds...)))
		})
	}
}
