package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])

	assert.True(t, ValidTimeSlot("09:30"))
	assert.True(t, ValidTimeSlot("16:30"))
	assert.False(t, ValidTimeSlot("17:00"))
	assert.False(t, ValidTimeSlot("08:30"))
	assert.False(t, ValidTimeSlot("09:15"))
}

func TestValidateBookingDate(t *testing.T) {
	// Monday 2026-03-02 as "today".
	today := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	require.NoError(t, ValidateBookingDate("2026-03-02", today), "same day is bookable")
	require.NoError(t, ValidateBookingDate("2026-03-03", today))

	err := ValidateBookingDate("2026-03-01", today)
	require.Error(t, err, "past dates are rejected")
	assert.True(t, IsValidation(err))

	err = ValidateBookingDate("2026-03-08", today)
	require.Error(t, err, "Sundays are rejected")
	assert.True(t, IsValidation(err))

	err = ValidateBookingDate("03/08/2026", today)
	require.Error(t, err, "bad format is rejected")
}

func TestMonthDates(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	dates := MonthDates(2026, time.March, today)
	require.Len(t, dates, 31)

	byDate := make(map[string]bool, len(dates))
	for _, d := range dates {
		byDate[d.Date] = d.Disabled
	}
	assert.True(t, byDate["2026-03-09"], "yesterday is disabled")
	assert.False(t, byDate["2026-03-10"], "today is enabled")
	assert.True(t, byDate["2026-03-15"], "Sunday is disabled")
	assert.False(t, byDate["2026-03-16"], "Monday is enabled")
}
