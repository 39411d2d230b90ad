package payment

import (
	"errors"
	"fmt"

	bookingRepo "servana/database/repository/booking"
	"servana/models"
	"servana/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ErrNotPayable is returned when a booking is not in a payable state.
var ErrNotPayable = errors.New("booking is not payable")

// IntentResult carries what the client needs to collect the payment.
type IntentResult struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	AmountCents     int64  `json:"amountCents"`
}

// Service creates and settles Stripe payments for bookings.
type Service interface {
	CreateIntent(bookingID string) (*IntentResult, error)
	ConfirmPayment(bookingID string) (*models.Booking, error)
}

// DefaultPaymentService implements Service against the Stripe API.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
}

// CreateIntent opens a payment intent for the booking's total and records
// the intent ID on the booking.
func (s *DefaultPaymentService) CreateIntent(bookingID string) (*IntentResult, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if b.Status == models.BookingCancelled || b.PaymentStatus == models.PaymentPaid {
		return nil, ErrNotPayable
	}
	if b.TotalCents <= 0 {
		return nil, ErrNotPayable
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(b.TotalCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", b.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	b.PaymentIntentID = pi.ID
	if err := s.Bookings.Update(b); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("bookingID", b.ID), zap.String("intentID", pi.ID))

	return &IntentResult{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		AmountCents:     b.TotalCents,
	}, nil
}

// ConfirmPayment checks the intent's status with Stripe and marks the
// booking paid or failed accordingly. Stripe is the source of truth: the
// client's claim of success is never trusted directly.
func (s *DefaultPaymentService) ConfirmPayment(bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if b.PaymentIntentID == "" {
		return nil, ErrNotPayable
	}

	pi, err := paymentintent.Get(b.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		b.PaymentStatus = models.PaymentPaid
		if b.Status == models.BookingPending {
			b.Status = models.BookingConfirmed
		}
	case stripe.PaymentIntentStatusCanceled:
		b.PaymentStatus = models.PaymentFailed
	default:
		// Still processing or awaiting a payment method: leave the
		// booking's payment status untouched.
		return b, nil
	}

	if err := s.Bookings.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}
