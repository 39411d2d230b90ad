package notification

import (
	"context"

	"servana/models"
)

// NotificationService sends push notifications to customers. Failures are
// logged by implementations and never block the booking path.
type NotificationService interface {
	BookingConfirmed(ctx context.Context, booking models.Booking) error
	BookingCancelled(ctx context.Context, booking models.Booking) error
	SendPush(ctx context.Context, customerID, title, body string, data map[string]string) error
}
