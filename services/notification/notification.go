package notification

import (
	"context"
	"fmt"

	customerRepo "servana/database/repository/customer"
	"servana/models"
	"servana/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService implements NotificationService over FCM.
type DefaultNotificationService struct {
	Customers customerRepo.CustomerRepository
	FCM       *messaging.Client
}

// BookingConfirmed notifies the booking's customer. Guest bookings have no
// device token, so they are skipped.
func (s *DefaultNotificationService) BookingConfirmed(ctx context.Context, booking models.Booking) error {
	if booking.CustomerID == "" {
		return nil
	}
	body := fmt.Sprintf("Your booking for %s at %s is confirmed. Total %s.",
		booking.Date, booking.Time, utils.FormatUSD(booking.TotalCents))
	return s.SendPush(ctx, booking.CustomerID, "Booking confirmed", body, map[string]string{
		"bookingId": booking.ID,
		"type":      "booking_confirmed",
	})
}

// BookingCancelled notifies the booking's customer of a cancellation.
func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, booking models.Booking) error {
	if booking.CustomerID == "" {
		return nil
	}
	body := fmt.Sprintf("Your booking for %s at %s was cancelled.", booking.Date, booking.Time)
	return s.SendPush(ctx, booking.CustomerID, "Booking cancelled", body, map[string]string{
		"bookingId": booking.ID,
		"type":      "booking_cancelled",
	})
}

// SendPush delivers one FCM message to the customer's registered device.
func (s *DefaultNotificationService) SendPush(ctx context.Context, customerID, title, body string, data map[string]string) error {
	logger := utils.GetLogger()

	cust, err := s.Customers.GetByID(customerID)
	if err != nil {
		return fmt.Errorf("failed to fetch customer %s: %w", customerID, err)
	}
	if cust == nil || cust.FCMToken == "" {
		logger.Debug("no FCM token for customer, skipping push", zap.String("customerID", customerID))
		return nil
	}
	if s.FCM == nil {
		logger.Warn("FCM client not configured, skipping push", zap.String("customerID", customerID))
		return nil
	}

	msg := &messaging.Message{
		Token: cust.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push to customer %s: %w", customerID, err)
	}
	return nil
}
