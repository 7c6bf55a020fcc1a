package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestNormalizeYear(t *testing.T) {
	tests := []struct {
		token string
		want  int
		ok    bool
	}{
		{"2019", 2019, true},
		{"1995", 1995, true},
		{"2025", 2025, true},  // next year is allowed
		{"2026", 0, false},    // beyond next year
		{"1949", 0, false},    // before the cutoff
		{"1950", 1950, true},  // cutoff itself
		{"19", 2019, true},    // two-digit, current century
		{"25", 2025, true},    // two-digit, lands on next year
		{"99", 1999, true},    // two-digit, rolls back a century
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			year, ok := normalizeYear(tt.token, testNow)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, year)
		})
	}
}

func TestMonthTokenToInt(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"Jan", 1},
		{"january", 1},
		{"SEPT", 9},
		{"Sep.", 9},
		{"December", 12},
		{"07", 7},
		{"12", 12},
		{"13", 0},
		{"0", 0},
		{"", 0},
		{"Januarium", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, monthTokenToInt(tt.token))
		})
	}
}

func TestComposeDate(t *testing.T) {
	t.Run("Start date defaults to January", func(t *testing.T) {
		d, present, ok := composeDate("2019", "", false, "", testNow)
		require.True(t, ok)
		assert.False(t, present)
		assert.Equal(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("End date defaults to December", func(t *testing.T) {
		d, present, ok := composeDate("2019", "", true, "", testNow)
		require.True(t, ok)
		assert.False(t, present)
		assert.Equal(t, time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Explicit month wins", func(t *testing.T) {
		d, _, ok := composeDate("2020", "Mar", true, "", testNow)
		require.True(t, ok)
		assert.Equal(t, time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Present markers resolve to the current month", func(t *testing.T) {
		for _, marker := range []string{"Present", "current", "NOW", "Till Date", "till now", "Today"} {
			d, present, ok := composeDate("", "", true, marker, testNow)
			require.True(t, ok, marker)
			assert.True(t, present, marker)
			assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), d, marker)
		}
	})

	t.Run("Unknown marker with no year fails", func(t *testing.T) {
		_, _, ok := composeDate("", "", true, "Someday", testNow)
		assert.False(t, ok)
	})
}

func TestMonthsSpan(t *testing.T) {
	jan2019 := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	mar2020 := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 15, monthsSpan(jan2019, mar2020))
	assert.Equal(t, 1, monthsSpan(jan2019, jan2019))
	assert.Equal(t, 12, monthsSpan(jan2019, time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Jan 2019 - Mar 2020", sanitizeText("Jan 2019 – Mar 2020"))
	assert.Equal(t, "2018 - 2019", sanitizeText("2018 — 2019"))
	assert.NotContains(t, sanitizeText("a b"), " ")
}

func TestIndexRoundTrip(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	} {
		assert.Equal(t, d, indexToDate(monthIndex(d)))
	}
}
