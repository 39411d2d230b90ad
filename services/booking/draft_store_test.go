package booking

import (
	"encoding/json"
	"testing"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The draft crosses Redis as JSON, so every field has to survive a
// marshal/unmarshal cycle exactly.
func TestDraftJSONRoundTrip(t *testing.T) {
	draft := models.BookingDraft{
		SessionID:    "sess-1",
		CustomerID:   "cust-1",
		ServiceID:    "svc-clean",
		Date:         "2026-09-07",
		Time:         "10:30",
		BusinessID:   "biz-shine",
		DeliveryType: models.DeliveryCustomerLocation,
		Services: []models.ServiceSelection{
			{ServiceID: "svc-clean", Quantity: 2},
			{ServiceID: "svc-trim", Quantity: 1},
		},
		AddOns: []models.AddOnSelection{
			{AddOnID: "add-fridge", Quantity: 1},
		},
		ProviderID:       "prov-ana",
		CustomerLocation: "12 Main St, Springfield",
		SpecialRequests:  "ring the side bell",
		PromotionCode:    "SPRING25",
		TotalCents:       13550,
	}

	data, err := json.Marshal(&draft)
	require.NoError(t, err)

	var got models.BookingDraft
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, draft, got)
}

// Zero-value optional fields must round-trip too: a draft fresh from the
// start step has no business, lines or provider yet.
func TestDraftJSONRoundTripMinimal(t *testing.T) {
	draft := models.BookingDraft{
		SessionID: "sess-2",
		ServiceID: "svc-clean",
		Date:      "2026-09-07",
		Time:      "09:00",
	}

	data, err := json.Marshal(&draft)
	require.NoError(t, err)

	var got models.BookingDraft
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, draft, got)
}
