package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"servana/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the asynq task carrying a booking reminder payload,
// scheduled to fire at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues booking reminders. The asynq-backed
// implementation is the default; tests substitute a fake.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking) error
}

// AsynqReminderScheduler schedules reminders on the asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleBookingReminder enqueues a reminder 24 hours before the booking's
// date and time. Bookings closer than 24 hours out get no reminder.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking models.Booking) error {
	if booking.CustomerID == "" {
		return nil // guests have no device to remind
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse booking start: %w", err)
	}
	fireAt := start.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		Title:      "Upcoming booking",
		Body:       fmt.Sprintf("Reminder: your booking is tomorrow at %s.", booking.Time),
		FireDate:   fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
