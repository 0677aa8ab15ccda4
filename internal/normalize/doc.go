// Package normalize turns raw spreadsheet cell text into numbers and dates.
//
// Sheet cells are typed by hand and drift over time: amounts carry currency
// symbols and Indian-style thousands separators ("₹ 1,23,456.78"), dates
// arrive as "05/03/2024", "2024-03-05", "5-Mar-2024" or with a time suffix.
// Every function here is best effort and never returns an error. Numbers
// default to 0, dates report ok=false, and callers treat a missing date as
// "exclude from date-bounded operations".
package normalize
