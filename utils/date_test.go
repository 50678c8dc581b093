package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDateJSONRoundTrip(t *testing.T) {
	d, err := ParseCustomDate("2026-09-15")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-15"`, string(raw))

	var back CustomDate
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestCustomDateZeroMarshalsNull(t *testing.T) {
	raw, err := json.Marshal(CustomDate{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(raw))
}

func TestParseCustomDateRejectsGarbage(t *testing.T) {
	_, err := ParseCustomDate("15/09/2026")
	assert.Error(t, err)

	_, err = ParseCustomDate("not a date")
	assert.Error(t, err)
}

func TestDaysUntilWholeDays(t *testing.T) {
	from := time.Date(2026, 6, 1, 18, 45, 0, 0, time.UTC)

	sameDay := NewCustomDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, sameDay.DaysUntil(from))

	nextWeek := NewCustomDate(time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 7, nextWeek.DaysUntil(from))

	past := NewCustomDate(time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, -2, past.DaysUntil(from))
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2026, 2)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into next year.
	start, end = MonthRange(2026, 12)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
	assert.Equal(t, 100.0, CalculateGrowth(5, 0))
	assert.Equal(t, 50.0, CalculateGrowth(15, 10))
	assert.Equal(t, -50.0, CalculateGrowth(5, 10))
}
