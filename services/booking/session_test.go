package booking

import (
	"fmt"
	"testing"
	"time"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureMonday() string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func newTestSessionService() (*DefaultBookingSessionService, *memDraftStore, *fakeBookingRepo, *fakeActionRepo) {
	drafts := newMemDraftStore()
	bookings := newFakeBookingRepo()
	actions := &fakeActionRepo{}

	svc := &DefaultBookingSessionService{
		Drafts: drafts,
		CatalogRepo: &fakeServiceRepo{services: map[string]models.Service{
			"svc-clean": {ID: "svc-clean", Name: "Deep Clean"},
			"svc-trim":  {ID: "svc-trim", Name: "Quick Trim"},
		}},
		BusinessRepo: &fakeBusinessRepo{businesses: map[string]models.Business{
			"biz-shine": {ID: "biz-shine", Name: "Shine Co"},
			"biz-closed-mon": {ID: "biz-closed-mon", Name: "Weekend Only", Hours: models.WeekHours{
				"monday": {Closed: true},
			}},
		}},
		OfferingRepo: &fakeOfferingRepo{offerings: []models.ServiceOffering{
			{ID: "off-1", BusinessID: "biz-shine", ServiceID: "svc-clean", BusinessPriceCents: 6000, DeliveryType: models.DeliveryCustomerLocation, Active: true},
			{ID: "off-2", BusinessID: "biz-shine", ServiceID: "svc-trim", BusinessPriceCents: 1550, DeliveryType: models.DeliveryBothLocations, Active: true},
			{ID: "off-3", BusinessID: "biz-closed-mon", ServiceID: "svc-clean", BusinessPriceCents: 5500, DeliveryType: models.DeliveryBusinessLocation, Active: true},
		}},
		AddOnRepo: &fakeAddOnRepo{addOns: map[string]models.AddOn{
			"add-fridge": {ID: "add-fridge", BusinessID: "biz-shine", Name: "Inside Fridge", PriceCents: 1500, Active: true},
		}},
		ProviderRepo: &fakeProviderRepo{providers: map[string]models.Provider{
			"prov-ana":  {ID: "prov-ana", BusinessID: "biz-shine", Role: models.RoleProvider},
			"prov-outsider": {ID: "prov-outsider", BusinessID: "biz-closed-mon", Role: models.RoleProvider},
		}},
		BookingRepo: bookings,
		ActionRepo:  actions,
		PromoSvc:    &fakePromoService{err: fmt.Errorf("no promo")},
	}
	return svc, drafts, bookings, actions
}

func startedDraft(t *testing.T, svc *DefaultBookingSessionService) *models.BookingDraft {
	t.Helper()
	draft, err := svc.StartDraft(StartDraftInput{
		ServiceID: "svc-clean",
		Date:      futureMonday(),
		Time:      "10:00",
	})
	require.NoError(t, err)
	return draft
}

func TestStartDraftValidation(t *testing.T) {
	svc, _, _, _ := newTestSessionService()

	_, err := svc.StartDraft(StartDraftInput{ServiceID: "nope", Date: futureMonday(), Time: "10:00"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.StartDraft(StartDraftInput{ServiceID: "svc-clean", Date: "2020-01-06", Time: "10:00"})
	assert.True(t, IsValidation(err), "past date rejected")

	_, err = svc.StartDraft(StartDraftInput{ServiceID: "svc-clean", Date: futureMonday(), Time: "10:15"})
	assert.True(t, IsValidation(err), "off-grid time rejected")

	draft := startedDraft(t, svc)
	assert.NotEmpty(t, draft.SessionID)
	assert.Equal(t, "svc-clean", draft.ServiceID)
}

func TestEligibleBusinesses(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := startedDraft(t, svc) // a Monday

	businesses, err := svc.EligibleBusinesses(draft.SessionID)
	require.NoError(t, err)
	require.Len(t, businesses, 1, "business closed on Monday is filtered out")
	assert.Equal(t, "biz-shine", businesses[0].ID)
}

func TestChooseBusinessResetsSelections(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := startedDraft(t, svc)

	_, err := svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)

	_, err = svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
		CustomerLocation: "12 Main St",
	})
	require.NoError(t, err)

	// Re-choosing a business must clear priced selections.
	updated, err := svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)
	assert.Empty(t, updated.Services)
	assert.Zero(t, updated.TotalCents)
}

func TestChooseBusinessRejectsIneligible(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := startedDraft(t, svc)

	_, err := svc.ChooseBusiness(draft.SessionID, "biz-closed-mon")
	assert.True(t, IsValidation(err), "closed on the selected weekday")
}

func TestConfigureMobileServiceRequiresAddress(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := startedDraft(t, svc)
	_, err := svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)

	_, err = svc.Configure(draft.SessionID, ConfigureInput{
		Services: []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "address")

	updated, err := svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
		CustomerLocation: "12 Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, "12 Main St", updated.CustomerLocation)
}

func TestConfigureComputesExactTotal(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := startedDraft(t, svc)
	_, err := svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)

	updated, err := svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 2}},
		AddOns:           []models.AddOnSelection{{AddOnID: "add-fridge", Quantity: 3}},
		CustomerLocation: "12 Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2*6000+3*1500), updated.TotalCents)
}

func TestConfigureProviderMustBelongToBusiness(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft := startedDraft(t, svc)
	_, err := svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)

	_, err = svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
		ProviderID:       "prov-outsider",
		CustomerLocation: "12 Main St",
	})
	assert.True(t, IsValidation(err))

	updated, err := svc.Configure(draft.SessionID, ConfigureInput{
		Services:         []models.ServiceSelection{{ServiceID: "svc-clean", Quantity: 1}},
		ProviderID:       "prov-ana",
		CustomerLocation: "12 Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, "prov-ana", updated.ProviderID)
}

func TestConfigureDeliveryNarrowing(t *testing.T) {
	svc, _, _, _ := newTestSessionService()
	draft, err := svc.StartDraft(StartDraftInput{
		ServiceID: "svc-trim", // offered as both_locations
		Date:      futureMonday(),
		Time:      "11:00",
	})
	require.NoError(t, err)
	_, err = svc.ChooseBusiness(draft.SessionID, "biz-shine")
	require.NoError(t, err)

	// both_locations requires an explicit choice.
	_, err = svc.Configure(draft.SessionID, ConfigureInput{
		Services: []models.ServiceSelection{{ServiceID: "svc-trim", Quantity: 1}},
	})
	assert.True(t, IsValidation(err))

	updated, err := svc.Configure(draft.SessionID, ConfigureInput{
		Services:       []models.ServiceSelection{{ServiceID: "svc-trim", Quantity: 1}},
		DeliveryChoice: models.DeliveryBusinessLocation,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryBusinessLocation, updated.DeliveryType)
	assert.Empty(t, updated.CustomerLocation)
}

func TestCancelDraft(t *testing.T) {
	svc, drafts, _, _ := newTestSessionService()
	draft := startedDraft(t, svc)

	require.NoError(t, svc.CancelDraft(draft.SessionID))
	_, err := drafts.Get(draft.SessionID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
