package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday(t *testing.T) {
	// 2024-03-10 is a Sunday, 2024-03-11 a Monday
	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Weekday(sunday))
	assert.Equal(t, 1, Weekday(sunday.AddDate(0, 0, 1)))
	assert.Equal(t, 6, Weekday(sunday.AddDate(0, 0, 6)))
}

func TestDateRange_Inclusive(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, end)

	require.Len(t, dates, 3)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, end, dates[2])
}

func TestDateRange_SingleDay(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	dates := DateRange(day, day)

	require.Len(t, dates, 1)
	assert.Equal(t, day, dates[0])
}

func TestDateRange_MonthBoundary(t *testing.T) {
	// February in a leap year
	start := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, end)

	require.Len(t, dates, 3)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestDateRange_YearBoundary(t *testing.T) {
	start := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, end)

	require.Len(t, dates, 4)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), dates[2])
}

func TestDateRange_EndBeforeStart(t *testing.T) {
	start := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, DateRange(start, end))
}

func TestDateRange_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)

	dates := DateRange(start, end)

	require.Len(t, dates, 2)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"17:30", 1050, false},
		{"9am", 0, true},
		{"25:00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		minutes, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.minutes, minutes, "input %q", tt.input)
	}
}

func TestWindowMinutes(t *testing.T) {
	minutes, err := WindowMinutes("09:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 480, minutes)

	minutes, err = WindowMinutes("12:15", "12:45")
	require.NoError(t, err)
	assert.Equal(t, 30, minutes)

	// Inverted windows come back negative; callers validate
	minutes, err = WindowMinutes("17:00", "09:00")
	require.NoError(t, err)
	assert.Equal(t, -480, minutes)
}

func TestWithinRange(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	assert.True(t, WithinRange(start, start, end))
	assert.True(t, WithinRange(end, start, end))
	assert.True(t, WithinRange(start.AddDate(0, 0, 1), start, end))
	assert.False(t, WithinRange(start.AddDate(0, 0, -1), start, end))
	assert.False(t, WithinRange(end.AddDate(0, 0, 1), start, end))
}
