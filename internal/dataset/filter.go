package dataset

import (
	"strings"

	"bookingdesk/internal/normalize"
)

// Predicate selects records.
type Predicate func(Record) bool

// Where keeps the records matching every predicate, in order.
func (d *Dataset) Where(preds ...Predicate) *Dataset {
	out := make([]Record, 0, len(d.Records))
	for _, r := range d.Records {
		if matchAll(r, preds) {
			out = append(out, r)
		}
	}
	return d.derive(out)
}

func matchAll(r Record, preds []Predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// ClusterEquals matches the cluster cell exactly, ignoring case and
// surrounding space.
func ClusterEquals(cluster string) Predicate {
	return fieldEquals(FieldCluster, cluster)
}

// UnitEquals matches the unit number exactly, ignoring case and
// surrounding space.
func UnitEquals(unit string) Predicate {
	return fieldEquals(FieldUnitNo, unit)
}

// StatusContains matches when the status cell contains status, ignoring
// case.
func StatusContains(status string) Predicate {
	want := strings.ToLower(strings.TrimSpace(status))
	return func(r Record) bool {
		return strings.Contains(strings.ToLower(r.Get(FieldStatus)), want)
	}
}

// MobileContains compares digits only, so "+91 98765-43210" matches
// "9876543210". A query without digits matches nothing.
func MobileContains(mobile string) Predicate {
	want := normalize.Digits(mobile)
	return func(r Record) bool {
		if want == "" {
			return false
		}
		return strings.Contains(normalize.Digits(r.Get(FieldMobile)), want)
	}
}

func fieldEquals(f Field, value string) Predicate {
	want := strings.TrimSpace(value)
	return func(r Record) bool {
		return strings.EqualFold(strings.TrimSpace(r.Get(f)), want)
	}
}
