package booking

import (
	"testing"
	"time"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredDraft(t *testing.T, svc *DefaultBookingSessionService) *models.BookingDraft {
	t.Helper()
	draft := startedDraft(t, svc)
	_, err := svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)
	updated, err := svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
		CustomerLocation: "12 Main St",
	})
	require.NoError(t, err)
	return updated
}

func TestCheckoutMissingDraft(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	_, err := svc.Checkout("no-such-session", CheckoutInput{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestCheckoutGuestContactValidation(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := configuredDraft(t, svc)

	_, err := svc.Checkout(draft.SessionID, CheckoutInput{})
	assert.True(t, IsValidation(err), "guest without name rejected")

	_, err = svc.Checkout(draft.SessionID, CheckoutInput{GuestName: "Pat"})
	assert.True(t, IsValidation(err), "guest without email rejected")

	_, err = svc.Checkout(draft.SessionID, CheckoutInput{GuestName: "Pat", GuestEmail: "not-an-email"})
	assert.True(t, IsValidation(err), "malformed email rejected")
}

func TestCheckoutGuest(t *testing.T) {
	svc, drafts, bookings, actions := newTestSessionService()
	draft := configuredDraft(t, svc)

	conf, err := svc.Checkout(draft.SessionID, CheckoutInput{
		GuestName:  "Pat Doe",
		GuestEmail: "pat@example.com",
	})
	require.NoError(t, err)
	assert.True(t, conf.Guest)
	assert.Equal(t, models.BookingPending, conf.Status)
	assert.Equal(t, []string{"Deep Clean × 1 — $60"}, conf.Summary.Lines)
	assert.Equal(t, int64(6000), conf.Summary.TotalCents)
	assert.Equal(t, "$60", conf.Summary.Total)

	b, err := bookings.GetByID(conf.BookingID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Empty(t, b.CustomerID)
	require.NotNil(t, b.Guest)
	assert.Equal(t, "pat@example.com", b.Guest.Email)

	// Audit row written, draft cleared.
	require.Len(t, actions.actions, 1)
	assert.Equal(t, models.ActionCreated, actions.actions[0].Action)
	assert.Equal(t, "guest", actions.actions[0].ActorID)

	_, err = drafts.Get(draft.SessionID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestCheckoutCustomerIgnoresGuestFields(t *testing.T) {
	svc, _, bookings, _ := newTestSessionService()
	draft := configuredDraft(t, svc)

	conf, err := svc.Checkout(draft.SessionID, CheckoutInput{
		CustomerID: "cust-1",
		GuestName:  "should be ignored",
	})
	require.NoError(t, err)
	assert.False(t, conf.Guest)

	b, _ := bookings.GetByID(conf.BookingID)
	assert.Equal(t, "cust-1", b.CustomerID)
	assert.Nil(t, b.Guest, "a customer booking never carries guest contact")
}

func TestCheckoutAppliesPromotion(t *testing.T) {
	svc, _, bookings, _ := newTestSessionService()
	svc.PromoSvc = &fakePromoService{promo: &models.Promotion{
		ID:           "promo-1",
		SavingsType:  models.SavingsPercentage,
		SavingsValue: 25,
		ValidFrom:    time.Now().Add(-time.Hour),
		ValidUntil:   time.Now().Add(time.Hour),
		Code:         "SPRING25",
	}}

	draft := startedDraft(t, svc)
	drafted, err := svc.GetDraft(draft.SessionID)
	require.NoError(t, err)
	drafted.PromotionCode = "SPRING25"
	require.NoError(t, svc.Drafts.Save(draft.SessionID, drafted))

	_, err = svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)
	_, err = svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
		CustomerLocation: "12 Main St",
	})
	require.NoError(t, err)

	conf, err := svc.Checkout(draft.SessionID, CheckoutInput{CustomerID: "cust-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), conf.Summary.DiscountCents)
	assert.Equal(t, int64(4500), conf.Summary.TotalCents)
	assert.Equal(t, "$45", conf.Summary.Total)

	b, _ := bookings.GetByID(conf.BookingID)
	assert.Equal(t, "promo-1", b.PromotionID)
	assert.Equal(t, int64(4500), b.TotalCents)
}

func TestCheckoutInvalidPromoCodeIsDropped(t *testing.T) {
	svc, _, _, _ := newTestSessionService() // fakePromoService returns an error
	draft := startedDraft(t, svc)
	drafted, err := svc.GetDraft(draft.SessionID)
	require.NoError(t, err)
	drafted.PromotionCode = "EXPIRED"
	require.NoError(t, svc.Drafts.Save(draft.SessionID, drafted))

	_, err = svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)
	_, err = svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
		CustomerLocation: "12 Main St",
	})
	require.NoError(t, err)

	conf, err := svc.Checkout(draft.SessionID, CheckoutInput{CustomerID: "cust-1"})
	require.NoError(t, err, "a bad code never blocks checkout")
	assert.Zero(t, conf.Summary.DiscountCents)
	assert.Equal(t, int64(6000), conf.Summary.TotalCents)
}

func TestCheckoutUnconfiguredDraft(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := startedDraft(t, svc) // no business chosen

	_, err := svc.Checkout(draft.SessionID, CheckoutInput{CustomerID: "cust-1"})
	assert.True(t, IsValidation(err))
}
