package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"servana/models"
	"servana/services/promotion"
	"servana/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Summary returns the itemized checkout summary for the draft, with any
// carried promotion applied.
func (s *DefaultBookingSessionService) Summary(sessionID string) (*models.CheckoutSummary, error) {
	draft, err := s.Drafts.Get(sessionID)
	if err != nil {
		return nil, err
	}
	items, err := s.buildLineItems(draft)
	if err != nil {
		return nil, err
	}
	summary, _, err := s.summarize(draft, items)
	return summary, err
}

func (s *DefaultBookingSessionService) summarize(draft *models.BookingDraft, items []models.LineItem) (*models.CheckoutSummary, *models.Promotion, error) {
	subtotal := Subtotal(items)

	var promo *models.Promotion
	var discount int64
	if draft.PromotionCode != "" {
		p, err := s.PromoSvc.Validate(draft.PromotionCode, draft.BusinessID, draft.ServiceID, time.Now())
		if err != nil {
			// An invalid pass-through code is dropped, not fatal: the
			// customer still checks out at full price.
			utils.GetLogger().Warn("promotion code rejected at checkout",
				zap.String("code", draft.PromotionCode), zap.Error(err))
		} else {
			promo = p
			discount = promotion.Discount(*p, subtotal)
		}
	}

	total := subtotal - discount
	return &models.CheckoutSummary{
		Lines:         SummaryLines(items),
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    total,
		Total:         utils.FormatUSD(total),
	}, promo, nil
}

// Checkout validates the contact block, freezes the draft into a booking
// record with its denormalized line items, writes the audit row, schedules
// the reminder, notifies the customer and clears the draft.
func (s *DefaultBookingSessionService) Checkout(sessionID string, input CheckoutInput) (*models.BookingConfirmation, error) {
	draft, err := s.Drafts.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if draft.BusinessID == "" || len(draft.Services) == 0 {
		return nil, ValidationError{Msg: "booking is not fully configured"}
	}

	// Contact block: a customer reference or guest fields, never both.
	var guest *models.GuestContact
	actorID := input.CustomerID
	if input.CustomerID == "" {
		if strings.TrimSpace(input.GuestName) == "" {
			return nil, ValidationError{Msg: "name is required"}
		}
		if !emailPattern.MatchString(input.GuestEmail) {
			return nil, ValidationError{Msg: "a valid email is required"}
		}
		guest = &models.GuestContact{
			Name:  strings.TrimSpace(input.GuestName),
			Email: strings.TrimSpace(input.GuestEmail),
			Phone: strings.TrimSpace(input.GuestPhone),
		}
		actorID = "guest"
	}

	items, err := s.buildLineItems(draft)
	if err != nil {
		return nil, err
	}
	summary, promo, err := s.summarize(draft, items)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:               uuid.New().String(),
		BusinessID:       draft.BusinessID,
		CustomerID:       input.CustomerID,
		Guest:            guest,
		Date:             draft.Date,
		Time:             draft.Time,
		DeliveryType:     draft.DeliveryType,
		CustomerLocation: draft.CustomerLocation,
		ProviderID:       draft.ProviderID,
		SpecialRequests:  draft.SpecialRequests,
		Status:           models.BookingPending,
		PaymentStatus:    models.PaymentPending,
		TotalCents:       summary.TotalCents,
		DiscountCents:    summary.DiscountCents,
		Items:            items,
	}
	if promo != nil {
		booking.PromotionID = promo.ID
	}

	if err := s.BookingRepo.Create(&booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// The audit row follows the booking write. A failure here must not
	// orphan the booking, so it is logged loudly instead of returned.
	s.appendAction(models.BookingAction{
		BookingID: booking.ID,
		Action:    models.ActionCreated,
		NewValue:  booking.Status,
		ActorID:   actorID,
	})

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking); err != nil {
			utils.GetLogger().Error("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.Notifier != nil {
		if err := s.Notifier.BookingConfirmed(context.Background(), booking); err != nil {
			utils.GetLogger().Error("failed to send booking push",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	if err := s.Drafts.Delete(sessionID); err != nil {
		utils.GetLogger().Warn("failed to clear booking draft",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return &models.BookingConfirmation{
		BookingID: booking.ID,
		Status:    booking.Status,
		Summary:   *summary,
		Guest:     guest != nil,
	}, nil
}

func (s *DefaultBookingSessionService) appendAction(a models.BookingAction) {
	a.ID = uuid.New().String()
	if err := s.ActionRepo.Append(&a); err != nil {
		utils.GetLogger().Error("failed to append booking action",
			zap.String("bookingID", a.BookingID),
			zap.String("action", a.Action),
			zap.Error(err))
	}
}
