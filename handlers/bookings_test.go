package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servana/models"
	booking "servana/services/booking"
	paymentSvc "servana/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeBookingService struct {
	booking       models.Booking
	cancelled     bool
	statusChanged bool
	reassigned    bool
	messaged      bool
	actionsListed bool
}

func (s *fakeBookingService) GetBooking(id string) (*models.Booking, error) {
	if id != s.booking.ID {
		return nil, fmt.Errorf("booking %s: %w", id, booking.ErrNotFound)
	}
	b := s.booking
	return &b, nil
}
func (s *fakeBookingService) ListCustomerBookings(customerID string) ([]models.Booking, error) {
	return nil, nil
}
func (s *fakeBookingService) ListBusinessBookings(businessID string) ([]models.Booking, error) {
	return nil, nil
}
func (s *fakeBookingService) ListActions(bookingID string) ([]models.BookingAction, error) {
	s.actionsListed = true
	return nil, nil
}
func (s *fakeBookingService) ChangeStatus(bookingID, newStatus, actorID string) (*models.Booking, error) {
	s.statusChanged = true
	b := s.booking
	b.Status = newStatus
	return &b, nil
}
func (s *fakeBookingService) Reassign(bookingID, providerID, actorID string) (*models.Booking, error) {
	s.reassigned = true
	b := s.booking
	return &b, nil
}
func (s *fakeBookingService) Cancel(bookingID, actorID, reason string, refundCents int64) (*models.Booking, error) {
	s.cancelled = true
	b := s.booking
	b.Status = models.BookingCancelled
	return &b, nil
}
func (s *fakeBookingService) RecordMessage(bookingID, actorID, note string) error {
	s.messaged = true
	return nil
}

type fakePaymentService struct {
	intentOpened bool
}

func (s *fakePaymentService) CreateIntent(bookingID string) (*paymentSvc.IntentResult, error) {
	s.intentOpened = true
	return &paymentSvc.IntentResult{PaymentIntentID: "pi_test", AmountCents: 6000}, nil
}
func (s *fakePaymentService) ConfirmPayment(bookingID string) (*models.Booking, error) {
	return &models.Booking{ID: bookingID}, nil
}

func ownedBooking() models.Booking {
	return models.Booking{
		ID:            "bk-1",
		CustomerID:    "cust-owner",
		BusinessID:    "biz-a",
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
		TotalCents:    6000,
	}
}

// perform runs the handler against a synthetic request carrying the given
// auth context keys, as the middleware would have set them.
func perform(handler gin.HandlerFunc, keys map[string]string, bookingID, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: bookingID}}
	for k, v := range keys {
		c.Set(k, v)
	}
	handler(c)
	return w
}

func TestCancelRejectsAnotherCustomersBooking(t *testing.T) {
	svc := &fakeBookingService{booking: ownedBooking()}
	h := &BookingsHandler{Svc: svc}

	w := perform(h.Cancel, map[string]string{"customerID": "cust-other"},
		"bk-1", `{"reason":"changed my mind","refundCents":99999}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, svc.cancelled, "cancel must not reach the service layer")
}

func TestCancelAllowsOwner(t *testing.T) {
	svc := &fakeBookingService{booking: ownedBooking()}
	h := &BookingsHandler{Svc: svc}

	w := perform(h.Cancel, map[string]string{"customerID": "cust-owner"},
		"bk-1", `{"reason":"changed my mind"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.cancelled)
}

func TestStatusChangeScopedToBusiness(t *testing.T) {
	svc := &fakeBookingService{booking: ownedBooking()}
	h := &BookingsHandler{Svc: svc}

	w := perform(h.ChangeStatus, map[string]string{"businessID": "biz-b", "providerID": "prov-b"},
		"bk-1", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, svc.statusChanged, "another business's staff cannot move the booking")

	w = perform(h.ChangeStatus, map[string]string{"businessID": "biz-a", "providerID": "prov-a"},
		"bk-1", `{"status":"completed"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.statusChanged)
}

func TestReassignScopedToBusiness(t *testing.T) {
	svc := &fakeBookingService{booking: ownedBooking()}
	h := &BookingsHandler{Svc: svc}

	w := perform(h.Reassign, map[string]string{"businessID": "biz-b", "providerID": "prov-b"},
		"bk-1", `{"providerId":"prov-x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, svc.reassigned)
}

func TestActionsScopedToBusiness(t *testing.T) {
	svc := &fakeBookingService{booking: ownedBooking()}
	h := &BookingsHandler{Svc: svc}

	w := perform(h.Actions, map[string]string{"businessID": "biz-b", "providerID": "prov-b"}, "bk-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, svc.actionsListed, "audit trail stays inside the booking's business")
}

func TestMessageScopedToBusiness(t *testing.T) {
	svc := &fakeBookingService{booking: ownedBooking()}
	h := &BookingsHandler{Svc: svc}

	w := perform(h.Message, map[string]string{"businessID": "biz-b", "providerID": "prov-b"},
		"bk-1", `{"note":"on our way"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, svc.messaged)
}

func TestPaymentIntentScopedToOwner(t *testing.T) {
	bookings := &fakeBookingService{booking: ownedBooking()}
	payments := &fakePaymentService{}
	h := &PaymentHandler{Svc: payments, Bookings: bookings}

	w := perform(h.CreateIntent, map[string]string{"customerID": "cust-other"}, "bk-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, payments.intentOpened, "strangers cannot open intents on the booking")

	w = perform(h.CreateIntent, map[string]string{"customerID": "cust-owner"}, "bk-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, payments.intentOpened)
}
