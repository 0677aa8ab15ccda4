package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name  string
		raw   string
		want  time.Time
		valid bool
	}{
		{"iso date", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, loc), true},
		{"month first when both small", "05/03/2024", time.Date(2024, 5, 3, 0, 0, 0, 0, loc), true},
		{"day first when above twelve", "25/03/2024", time.Date(2024, 3, 25, 0, 0, 0, 0, loc), true},
		{"dash separated day first", "25-03-2024", time.Date(2024, 3, 25, 0, 0, 0, 0, loc), true},
		{"year first unpadded", "2024/3/5", time.Date(2024, 3, 5, 0, 0, 0, 0, loc), true},
		{"with time suffix", "25/03/2024 10:30:00", time.Date(2024, 3, 25, 0, 0, 0, 0, loc), true},
		{"iso date time", "2024-03-05 10:30:00", time.Date(2024, 3, 5, 10, 30, 0, 0, loc), true},
		{"textual month", "5-Mar-2024", time.Date(2024, 3, 5, 0, 0, 0, 0, loc), true},
		{"long textual month", "March 5, 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, loc), true},
		{"two digit year", "25/03/24", time.Date(2024, 3, 25, 0, 0, 0, 0, loc), true},
		{"not a date", "not a date", time.Time{}, false},
		{"empty", "   ", time.Time{}, false},
		{"two parts", "03/2024", time.Time{}, false},
		{"month out of range", "2024-13-05", time.Time{}, false},
		{"day overflow", "31/02/2024", time.Time{}, false},
		{"zero day", "00/03/2024", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw, loc)
			require.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestParseDate_RFC3339ConvertedToLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	got, ok := ParseDate("2024-03-05T00:00:00Z", loc)
	require.True(t, ok)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 5, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseDate_NilLocationUsesLocal(t *testing.T) {
	got, ok := ParseDate("2024-03-05", nil)
	require.True(t, ok)
	assert.Equal(t, time.Local, got.Location())
}
