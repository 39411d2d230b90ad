package customer

import (
	"testing"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocationRepo struct {
	locations map[string]models.CustomerLocation
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[string]models.CustomerLocation)}
}

func (r *fakeLocationRepo) GetByID(id string) (*models.CustomerLocation, error) {
	if l, ok := r.locations[id]; ok {
		copy := l
		return &copy, nil
	}
	return nil, nil
}
func (r *fakeLocationRepo) ListByCustomer(customerID string) ([]models.CustomerLocation, error) {
	var out []models.CustomerLocation
	for _, l := range r.locations {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *fakeLocationRepo) GetPrimary(customerID string) (*models.CustomerLocation, error) {
	for _, l := range r.locations {
		if l.CustomerID == customerID && l.IsPrimary {
			copy := l
			return &copy, nil
		}
	}
	return nil, nil
}
func (r *fakeLocationRepo) Create(l *models.CustomerLocation) error {
	r.locations[l.ID] = *l
	return nil
}
func (r *fakeLocationRepo) Update(l *models.CustomerLocation) error {
	r.locations[l.ID] = *l
	return nil
}
func (r *fakeLocationRepo) Delete(id, customerID string) error {
	if l, ok := r.locations[id]; ok && l.CustomerID == customerID {
		delete(r.locations, id)
	}
	return nil
}
func (r *fakeLocationRepo) SetPrimary(customerID, locationID string) error {
	// Mirrors the single atomic update: every location's flag is derived
	// from the ID comparison in one pass.
	for id, l := range r.locations {
		if l.CustomerID == customerID {
			l.IsPrimary = id == locationID
			r.locations[id] = l
		}
	}
	return nil
}

func newTestLocationService() (*DefaultCustomerService, *fakeLocationRepo) {
	locs := newFakeLocationRepo()
	return &DefaultCustomerService{Locations: locs}, locs
}

func homeInput() LocationInput {
	return LocationInput{
		Label:      "Home",
		Type:       models.LocationHome,
		Street:     "12 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62704",
	}
}

func TestCreateLocationFirstBecomesPrimary(t *testing.T) {
	svc, _ := newTestLocationService()

	first, err := svc.CreateLocation("cust-1", homeInput())
	require.NoError(t, err)
	assert.True(t, first.IsPrimary, "first saved address is primary")

	second, err := svc.CreateLocation("cust-1", LocationInput{
		Label: "Work", Type: models.LocationOther,
		Street: "500 Office Park", City: "Springfield", State: "IL", PostalCode: "62701",
	})
	require.NoError(t, err)
	assert.False(t, second.IsPrimary)
}

func TestCreateLocationValidation(t *testing.T) {
	svc, _ := newTestLocationService()

	bad := homeInput()
	bad.Type = "Castle"
	_, err := svc.CreateLocation("cust-1", bad)
	assert.Error(t, err, "unknown location type rejected")

	bad = homeInput()
	bad.Street = "  "
	_, err = svc.CreateLocation("cust-1", bad)
	assert.Error(t, err, "street required")
}

func TestSetPrimaryLocationExactlyOne(t *testing.T) {
	svc, locs := newTestLocationService()

	first, err := svc.CreateLocation("cust-1", homeInput())
	require.NoError(t, err)
	second, err := svc.CreateLocation("cust-1", LocationInput{
		Label: "Hotel", Type: models.LocationHotel,
		Street: "1 Plaza Way", City: "Chicago", State: "IL", PostalCode: "60601",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetPrimaryLocation("cust-1", second.ID))

	all, _ := locs.ListByCustomer("cust-1")
	primaries := 0
	for _, l := range all {
		if l.IsPrimary {
			primaries++
			assert.Equal(t, second.ID, l.ID)
		}
	}
	assert.Equal(t, 1, primaries, "exactly one primary after reassignment")
	_ = first
}

func TestSetPrimaryLocationOwnershipCheck(t *testing.T) {
	svc, _ := newTestLocationService()

	loc, err := svc.CreateLocation("cust-1", homeInput())
	require.NoError(t, err)

	err = svc.SetPrimaryLocation("cust-2", loc.ID)
	assert.ErrorIs(t, err, ErrNotFound, "another customer's location is invisible")
}

func TestUpdateLocationScopedToOwner(t *testing.T) {
	svc, _ := newTestLocationService()

	loc, err := svc.CreateLocation("cust-1", homeInput())
	require.NoError(t, err)

	_, err = svc.UpdateLocation("cust-2", loc.ID, homeInput())
	assert.ErrorIs(t, err, ErrNotFound)

	edited := homeInput()
	edited.Label = "Main home"
	updated, err := svc.UpdateLocation("cust-1", loc.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, "Main home", updated.Label)
}
