package greenpass

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		from   time.Time
		months int
		want   time.Time
	}{
		{"plain", day(2021, time.June, 15), 9, day(2022, time.March, 15)},
		{"year rollover", day(2021, time.December, 31), 6, day(2022, time.June, 30)},
		{"clamp to february", day(2021, time.January, 31), 1, day(2021, time.February, 28)},
		{"clamp to leap day", day(2020, time.January, 31), 1, day(2020, time.February, 29)},
		{"nine months clamp", day(2021, time.May, 31), 9, day(2022, time.February, 28)},
		{"six months clamp", day(2021, time.August, 31), 6, day(2022, time.February, 28)},
		{"zero", day(2021, time.March, 31), 0, day(2021, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, addMonths(tt.from, tt.months))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := map[string]time.Time{
		"2021-06-15T00:00:00":           time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC),
		"2021-06-15T08:30:00.5":         time.Date(2021, time.June, 15, 8, 30, 0, 500000000, time.UTC),
		"2021-06-15 08:30:00":           time.Date(2021, time.June, 15, 8, 30, 0, 0, time.UTC),
		"2021-06-15T08:30:00Z":          time.Date(2021, time.June, 15, 8, 30, 0, 0, time.UTC),
		"2021-06-15":                    time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC),
		"2021-06-15T08:30:00.123+00:00": time.Date(2021, time.June, 15, 8, 30, 0, 123000000, time.UTC),
	}

	for in, want := range tests {
		got, err := parseTimestamp(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}

	got, err := parseTimestamp("2021-06-15T08:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, time.Date(2021, time.June, 15, 6, 30, 0, 0, time.UTC).Equal(got))

	for _, bad := range []string{"", "15/06/2021", "2021-13-01", "2021-06-15T25:00:00", "yesterday"} {
		_, err := parseTimestamp(bad)
		assert.Error(t, err, bad)
	}
}
