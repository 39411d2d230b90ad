package booking

import (
	"fmt"
	"time"
)

// Booking hours: half-hour slots from 09:00 up to (not including) 17:00.
// Sundays are closed marketplace-wide.
const (
	slotOpenHour    = 9
	slotCloseHour   = 17
	slotStepMinutes = 30
)

const dateLayout = "2006-01-02"

// TimeSlots returns the fixed list of bookable start times for any open day:
// "09:00", "09:30", ... "16:30".
func TimeSlots() []string {
	var slots []string
	for h := slotOpenHour; h < slotCloseHour; h++ {
		for m := 0; m < 60; m += slotStepMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// ValidTimeSlot reports whether t ("HH:MM") is one of the bookable start times.
func ValidTimeSlot(t string) bool {
	for _, s := range TimeSlots() {
		if s == t {
			return true
		}
	}
	return false
}

// ValidateBookingDate checks that date ("YYYY-MM-DD") is parseable, not
// before today, and not a Sunday.
func ValidateBookingDate(date string, today time.Time) error {
	d, err := time.ParseInLocation(dateLayout, date, today.Location())
	if err != nil {
		return ValidationError{Msg: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if d.Before(startOfToday) {
		return ValidationError{Msg: "date is in the past"}
	}
	if d.Weekday() == time.Sunday {
		return ValidationError{Msg: "bookings are not available on Sundays"}
	}
	return nil
}

// DateOption is one selectable calendar cell.
type DateOption struct {
	Date     string `json:"date"` // "YYYY-MM-DD"
	Disabled bool   `json:"disabled"`
}

// MonthDates returns every date of the given month with past dates and
// Sundays marked disabled, for rendering the date picker.
func MonthDates(year int, month time.Month, today time.Time) []DateOption {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	var options []DateOption
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		options = append(options, DateOption{
			Date:     d.Format(dateLayout),
			Disabled: ValidateBookingDate(d.Format(dateLayout), today) != nil,
		})
	}
	return options
}
