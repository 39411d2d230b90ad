package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "servana/database/repository/booking"
	providerRepo "servana/database/repository/provider"
	"servana/models"
	"servana/services/notification"
	"servana/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService covers mutations on bookings after checkout.
type BookingService interface {
	GetBooking(id string) (*models.Booking, error)
	ListCustomerBookings(customerID string) ([]models.Booking, error)
	ListBusinessBookings(businessID string) ([]models.Booking, error)
	ListActions(bookingID string) ([]models.BookingAction, error)
	ChangeStatus(bookingID, newStatus, actorID string) (*models.Booking, error)
	Reassign(bookingID, providerID, actorID string) (*models.Booking, error)
	Cancel(bookingID, actorID, reason string, refundCents int64) (*models.Booking, error)
	RecordMessage(bookingID, actorID, note string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Actions   bookingRepo.ActionRepository
	Providers providerRepo.ProviderRepository
	Notifier  notification.NotificationService
}

// GetBooking retrieves one booking.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// ListCustomerBookings retrieves a customer's bookings, newest first.
func (s *DefaultBookingService) ListCustomerBookings(customerID string) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(customerID)
}

// ListBusinessBookings retrieves a business's bookings, newest first.
func (s *DefaultBookingService) ListBusinessBookings(businessID string) ([]models.Booking, error) {
	return s.Repo.ListByBusiness(businessID)
}

// ListActions retrieves a booking's audit trail.
func (s *DefaultBookingService) ListActions(bookingID string) ([]models.BookingAction, error) {
	return s.Actions.ListByBooking(bookingID)
}

// ChangeStatus moves a booking to a new status and records the transition.
func (s *DefaultBookingService) ChangeStatus(bookingID, newStatus, actorID string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, ValidationError{Msg: fmt.Sprintf("invalid booking status %q", newStatus)}
	}
	if newStatus == models.BookingCancelled {
		return nil, ValidationError{Msg: "use the cancel operation to cancel a booking"}
	}

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingCancelled {
		return nil, ValidationError{Msg: "cancelled bookings cannot change status"}
	}

	old := b.Status
	b.Status = newStatus
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	s.append(models.BookingAction{
		BookingID: bookingID,
		Action:    models.ActionStatusChange,
		OldValue:  old,
		NewValue:  newStatus,
		ActorID:   actorID,
	})
	return b, nil
}

// Reassign moves a booking to another provider and records the change.
func (s *DefaultBookingService) Reassign(bookingID, providerID, actorID string) (*models.Booking, error) {
	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}

	prov, err := s.Providers.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if prov == nil || prov.BusinessID != b.BusinessID {
		return nil, ValidationError{Msg: "provider does not work for this booking's business"}
	}

	old := b.ProviderID
	b.ProviderID = providerID
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	s.append(models.BookingAction{
		BookingID: bookingID,
		Action:    models.ActionReassigned,
		OldValue:  old,
		NewValue:  providerID,
		ActorID:   actorID,
	})
	return b, nil
}

// Cancel cancels a booking with a reason, recording the audit trail and an
// optional refund amount.
func (s *DefaultBookingService) Cancel(bookingID, actorID, reason string, refundCents int64) (*models.Booking, error) {
	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingCancelled {
		return nil, ValidationError{Msg: "booking is already cancelled"}
	}

	old := b.Status
	now := time.Now()
	b.Status = models.BookingCancelled
	b.CancelledAt = &now
	b.CancelledBy = actorID
	b.CancelReason = reason
	if refundCents > 0 {
		b.RefundCents = refundCents
		b.PaymentStatus = models.PaymentRefunded
	}
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	s.append(models.BookingAction{
		BookingID: bookingID,
		Action:    models.ActionCancelled,
		OldValue:  old,
		NewValue:  models.BookingCancelled,
		ActorID:   actorID,
		Note:      reason,
	})

	if s.Notifier != nil {
		if err := s.Notifier.BookingCancelled(context.Background(), *b); err != nil {
			utils.GetLogger().Error("failed to send cancellation push",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	return b, nil
}

// RecordMessage appends a manual note to a booking's audit trail.
func (s *DefaultBookingService) RecordMessage(bookingID, actorID, note string) error {
	if _, err := s.GetBooking(bookingID); err != nil {
		return err
	}
	s.append(models.BookingAction{
		BookingID: bookingID,
		Action:    models.ActionManualMessage,
		ActorID:   actorID,
		Note:      note,
	})
	return nil
}

func (s *DefaultBookingService) append(a models.BookingAction) {
	a.ID = uuid.New().String()
	if err := s.Actions.Append(&a); err != nil {
		utils.GetLogger().Error("failed to append booking action",
			zap.String("bookingID", a.BookingID),
			zap.String("action", a.Action),
			zap.Error(err))
	}
}
