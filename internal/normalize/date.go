package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// genericLayouts are tried before the positional heuristic. Only layouts
// whose field order is unambiguous belong here; slash and dash separated
// numeric dates go through ParseDate's day/month rule instead.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"2-Jan-06",
	"02 Jan 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Mon, 02 Jan 2006",
	"Mon Jan 2 2006",
	"Mon Jan 02 2006 15:04:05",
}

var dateSeparators = regexp.MustCompile(`[/\-\s:]+`)

// ParseDate reads a cell as a calendar date in loc. ok is false when the
// text cannot be understood; the zero time is returned in that case.
//
// Numeric dates are resolved positionally: a leading 4-digit year means
// year-month-day. Otherwise the first two parts are day and month, and the
// first is taken as the day only when it exceeds 12. "05/03/2024" therefore
// reads as 3 May 2024 while "25/03/2024" reads as 25 March 2024. The rule is
// kept as-is so historical aggregates do not shift.
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range genericLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}

	parts := splitDate(s)
	if len(parts) < 3 {
		return time.Time{}, false
	}

	var year, month, day int
	first, last := parts[0], parts[len(parts)-1]
	switch {
	case isFourDigits(first) && atoi(first) > 1900:
		year, month, day = atoi(parts[0]), atoi(parts[1]), atoi(parts[2])
	case isFourDigits(last) && atoi(last) > 1900 && atoi(last) < 3000:
		day, month = dayMonth(atoi(parts[0]), atoi(parts[1]))
		year = atoi(last)
	default:
		day, month = dayMonth(atoi(parts[0]), atoi(parts[1]))
		year = atoi(parts[2])
		if year > 0 && year < 100 {
			year += 2000
		}
	}

	return buildDate(year, month, day, loc)
}

// dayMonth applies the ">12 means day" rule to the first two components.
func dayMonth(a, b int) (day, month int) {
	if a > 12 {
		return a, b
	}
	return b, a
}

func buildDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if year <= 0 || month <= 0 || day <= 0 || month > 12 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalises 31 Feb into March; treat that as unparseable.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func splitDate(s string) []string {
	raw := dateSeparators.Split(s, -1)
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func isFourDigits(s string) bool {
	return len(s) == 4 && Digits(s) == s
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
