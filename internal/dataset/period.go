package dataset

import (
	"strings"
	"time"
)

// Period is a named window relative to the moment of a request.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this_week"
	PeriodThisMonth Period = "this_month"
	// PeriodAll does not bound dates. Undated rows are still dropped.
	PeriodAll Period = "all"
)

// ParsePeriod maps a query value to a Period. Anything unrecognised,
// including the empty string, is PeriodAll.
func ParsePeriod(s string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodToday, PeriodThisWeek, PeriodThisMonth:
		return p
	default:
		return PeriodAll
	}
}

func (p Period) String() string {
	return string(p)
}

// Contains reports whether t falls inside the window of p evaluated at now.
// Windows are computed in now's location:
//
//	today       [start of day, next midnight)
//	this_week   [now-7d, now]
//	this_month  [first of month, first of next month)
func (p Period) Contains(t, now time.Time) bool {
	switch p {
	case PeriodToday:
		start := midnight(now)
		return !t.Before(start) && t.Before(start.AddDate(0, 0, 1))
	case PeriodThisWeek:
		return !t.Before(now.AddDate(0, 0, -7)) && !t.After(now)
	case PeriodThisMonth:
		y, m, _ := now.Date()
		start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return !t.Before(start) && t.Before(start.AddDate(0, 1, 0))
	default:
		return true
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FilterPeriod keeps the records whose date field falls in p. Dates are
// parsed in now's location. Records without a parseable date are dropped
// for every period. Order is preserved.
func (d *Dataset) FilterPeriod(p Period, f Field, now time.Time) *Dataset {
	loc := now.Location()
	out := make([]Record, 0, len(d.Records))
	for _, r := range d.Records {
		t, ok := r.Date(f, loc)
		if !ok {
			continue
		}
		if p.Contains(t, now) {
			out = append(out, r)
		}
	}
	return d.derive(out)
}
