package dataset

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"bookingdesk/pkg/contracts/domain"
)

// UnknownLabel groups blank cells.
const UnknownLabel = "Unknown"

// GroupCount tallies the trimmed values of f, most frequent first. Equal
// counts keep the order of first occurrence.
func (d *Dataset) GroupCount(f Field) []domain.GroupCount {
	index := make(map[string]int)
	groups := make([]domain.GroupCount, 0)
	for _, r := range d.Records {
		label := strings.TrimSpace(r.Get(f))
		if label == "" {
			label = UnknownLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, domain.GroupCount{Label: label})
		}
		groups[i].Count++
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// Sum adds up the parsed numbers of f. Unparseable cells contribute zero.
func (d *Dataset) Sum(f Field) float64 {
	total := decimal.Zero
	for _, r := range d.Records {
		total = total.Add(decimal.NewFromFloat(r.Number(f)))
	}
	return total.InexactFloat64()
}

// Numbers returns the non-zero parsed values of f in record order.
func (d *Dataset) Numbers(f Field) []float64 {
	out := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		if v := r.Number(f); v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// CountEqual counts records whose trimmed value of f equals value,
// ignoring case.
func (d *Dataset) CountEqual(f Field, value string) int {
	n := 0
	for _, r := range d.Records {
		if strings.EqualFold(strings.TrimSpace(r.Get(f)), value) {
			n++
		}
	}
	return n
}
