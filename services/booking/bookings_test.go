package booking

import (
	"testing"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBookingService() (*DefaultBookingService, *fakeBookingRepo, *fakeActionRepo) {
	bookings := newFakeBookingRepo()
	actions := &fakeActionRepo{}
	svc := &DefaultBookingService{
		Repo:    bookings,
		Actions: actions,
		Providers: &fakeProviderRepo{providers: map[string]models.Provider{
			"prov-ana":      {ID: "prov-ana", BusinessID: "biz-shine", Role: models.RoleProvider},
			"prov-outsider": {ID: "prov-outsider", BusinessID: "biz-other", Role: models.RoleProvider},
		}},
	}
	bookings.bookings["bk-1"] = models.Booking{
		ID:            "bk-1",
		BusinessID:    "biz-shine",
		CustomerID:    "cust-1",
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPaid,
		TotalCents:    6000,
	}
	return svc, bookings, actions
}

func TestGetBookingNotFound(t *testing.T) {
	svc, _, _ := newTestBookingService()
	_, err := svc.GetBooking("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangeStatus(t *testing.T) {
	svc, _, actions := newTestBookingService()

	b, err := svc.ChangeStatus("bk-1", models.BookingConfirmed, "prov-ana")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)

	require.Len(t, actions.actions, 1)
	a := actions.actions[0]
	assert.Equal(t, models.ActionStatusChange, a.Action)
	assert.Equal(t, models.BookingPending, a.OldValue)
	assert.Equal(t, models.BookingConfirmed, a.NewValue)
	assert.Equal(t, "prov-ana", a.ActorID)

	_, err = svc.ChangeStatus("bk-1", "teleported", "prov-ana")
	assert.True(t, IsValidation(err), "unknown status rejected")

	_, err = svc.ChangeStatus("bk-1", models.BookingCancelled, "prov-ana")
	assert.True(t, IsValidation(err), "cancellation goes through Cancel")
}

func TestReassign(t *testing.T) {
	svc, bookings, actions := newTestBookingService()

	_, err := svc.Reassign("bk-1", "prov-outsider", "prov-ana")
	assert.True(t, IsValidation(err), "provider from another business rejected")

	b, err := svc.Reassign("bk-1", "prov-ana", "disp-1")
	require.NoError(t, err)
	assert.Equal(t, "prov-ana", b.ProviderID)

	stored, _ := bookings.GetByID("bk-1")
	assert.Equal(t, "prov-ana", stored.ProviderID)
	require.Len(t, actions.actions, 1)
	assert.Equal(t, models.ActionReassigned, actions.actions[0].Action)
}

func TestCancelWithRefund(t *testing.T) {
	svc, bookings, actions := newTestBookingService()

	b, err := svc.Cancel("bk-1", "cust-1", "sick", 6000)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, b.Status)
	assert.Equal(t, models.PaymentRefunded, b.PaymentStatus)
	assert.Equal(t, int64(6000), b.RefundCents)
	assert.NotNil(t, b.CancelledAt)
	assert.Equal(t, "cust-1", b.CancelledBy)
	assert.Equal(t, "sick", b.CancelReason)

	require.Len(t, actions.actions, 1)
	assert.Equal(t, models.ActionCancelled, actions.actions[0].Action)
	assert.Equal(t, "sick", actions.actions[0].Note)

	// Already cancelled: no second cancellation.
	_, err = svc.Cancel("bk-1", "cust-1", "again", 0)
	assert.True(t, IsValidation(err))

	stored, _ := bookings.GetByID("bk-1")
	assert.Equal(t, models.BookingCancelled, stored.Status)
}

func TestCancelWithoutRefundKeepsPaymentStatus(t *testing.T) {
	svc, bookings, _ := newTestBookingService()

	_, err := svc.Cancel("bk-1", "prov-ana", "no-show", 0)
	require.NoError(t, err)

	stored, _ := bookings.GetByID("bk-1")
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
	assert.Zero(t, stored.RefundCents)
}

func TestRecordMessage(t *testing.T) {
	svc, _, actions := newTestBookingService()

	require.NoError(t, svc.RecordMessage("bk-1", "prov-ana", "customer asked to ring the side bell"))
	require.Len(t, actions.actions, 1)
	assert.Equal(t, models.ActionManualMessage, actions.actions[0].Action)

	err := svc.RecordMessage("missing", "prov-ana", "note")
	assert.ErrorIs(t, err, ErrNotFound)
}
