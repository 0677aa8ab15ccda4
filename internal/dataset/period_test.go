package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"today", PeriodToday},
		{" This_Week ", PeriodThisWeek},
		{"this_month", PeriodThisMonth},
		{"", PeriodAll},
		{"last_year", PeriodAll},
		{"all", PeriodAll},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePeriod(tt.in))
		})
	}
}

func TestPeriodContains(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, loc)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	tests := []struct {
		name   string
		period Period
		t      time.Time
		want   bool
	}{
		{"today at midnight", PeriodToday, day(2024, 3, 15), true},
		{"today excludes tomorrow", PeriodToday, day(2024, 3, 16), false},
		{"today excludes yesterday", PeriodToday, day(2024, 3, 14), false},
		{"week includes now", PeriodThisWeek, now, true},
		{"week includes exactly seven days ago", PeriodThisWeek, now.AddDate(0, 0, -7), true},
		{"week excludes eight days ago", PeriodThisWeek, now.AddDate(0, 0, -8), false},
		{"week excludes future", PeriodThisWeek, now.Add(time.Minute), false},
		{"week excludes midnight seven days back", PeriodThisWeek, day(2024, 3, 8), false},
		{"month includes first", PeriodThisMonth, day(2024, 3, 1), true},
		{"month includes last", PeriodThisMonth, day(2024, 3, 31), true},
		{"month excludes next first", PeriodThisMonth, day(2024, 4, 1), false},
		{"month excludes previous", PeriodThisMonth, day(2024, 2, 29), false},
		{"all includes anything", PeriodAll, day(1999, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Contains(tt.t, now))
		})
	}
}

func TestFilterPeriod(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, loc)

	rows := [][]string{
		{"Booking Date", "Unit No"},
		{"2024-03-15", "today"},
		{"2024-03-07", "eight days ago"},
		{"not a date", "undated"},
		{"", "blank"},
		{"2024-03-01", "first of month"},
		{"2023-11-20", "last year"},
		{"13/03/2024", "day first"},
	}
	ds := FromRows(rows, 1, DefaultCatalog())

	units := func(d *Dataset) []string {
		var out []string
		for _, r := range d.Records {
			out = append(out, r.Get(FieldUnitNo))
		}
		return out
	}

	assert.Equal(t, []string{"today"}, units(ds.FilterPeriod(PeriodToday, FieldBookingDate, now)))
	assert.Equal(t, []string{"today", "day first"}, units(ds.FilterPeriod(PeriodThisWeek, FieldBookingDate, now)))
	assert.Equal(t, []string{"today", "eight days ago", "first of month", "day first"},
		units(ds.FilterPeriod(PeriodThisMonth, FieldBookingDate, now)))

	all := ds.FilterPeriod(PeriodAll, FieldBookingDate, now)
	assert.Equal(t, []string{"today", "eight days ago", "first of month", "last year", "day first"}, units(all))
	assert.NotContains(t, units(all), "undated")

	require.Equal(t, 7, ds.Len(), "filtering does not mutate the source")
	assert.Equal(t, ds.Headers, all.Headers)
}
