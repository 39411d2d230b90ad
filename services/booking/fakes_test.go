package booking

import (
	"time"

	"servana/models"
)

// In-memory fakes standing in for Mongo repositories and the Redis draft
// store.

type memDraftStore struct {
	drafts map[string]models.BookingDraft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *memDraftStore) Save(sessionID string, draft *models.BookingDraft) error {
	s.drafts[sessionID] = *draft
	return nil
}

func (s *memDraftStore) Get(sessionID string) (*models.BookingDraft, error) {
	d, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copy := d
	return &copy, nil
}

func (s *memDraftStore) Delete(sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

type fakeServiceRepo struct {
	services map[string]models.Service
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return &s, nil
	}
	return nil, nil
}
func (r *fakeServiceRepo) ListFeatured(limit int64) ([]models.Service, error)       { return nil, nil }
func (r *fakeServiceRepo) ListPopular(limit int64) ([]models.Service, error)        { return nil, nil }
func (r *fakeServiceRepo) ListByCategory(category string) ([]models.Service, error) { return nil, nil }
func (r *fakeServiceRepo) Create(s *models.Service) error                           { return nil }
func (r *fakeServiceRepo) Update(s *models.Service) error                           { return nil }

type fakeBusinessRepo struct {
	businesses map[string]models.Business
}

func (r *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	if b, ok := r.businesses[id]; ok {
		return &b, nil
	}
	return nil, nil
}
func (r *fakeBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) { return nil, nil }
func (r *fakeBusinessRepo) GetByIDs(ids []string) ([]models.Business, error) {
	var out []models.Business
	for _, id := range ids {
		if b, ok := r.businesses[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *fakeBusinessRepo) Create(b *models.Business) error { return nil }
func (r *fakeBusinessRepo) Update(b *models.Business) error { return nil }
func (r *fakeBusinessRepo) Delete(id string) error          { return nil }

type fakeOfferingRepo struct {
	offerings []models.ServiceOffering
}

func (r *fakeOfferingRepo) ListActiveByBusiness(businessID string) ([]models.ServiceOffering, error) {
	var out []models.ServiceOffering
	for _, o := range r.offerings {
		if o.BusinessID == businessID && o.Active {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *fakeOfferingRepo) GetByBusinessAndService(businessID, serviceID string) (*models.ServiceOffering, error) {
	for _, o := range r.offerings {
		if o.BusinessID == businessID && o.ServiceID == serviceID {
			copy := o
			return &copy, nil
		}
	}
	return nil, nil
}
func (r *fakeOfferingRepo) ListBusinessIDsOffering(serviceID string) ([]string, error) {
	var ids []string
	for _, o := range r.offerings {
		if o.ServiceID == serviceID && o.Active {
			ids = append(ids, o.BusinessID)
		}
	}
	return ids, nil
}
func (r *fakeOfferingRepo) Upsert(o *models.ServiceOffering) error { return nil }
func (r *fakeOfferingRepo) Delete(id string) error                 { return nil }

type fakeAddOnRepo struct {
	addOns map[string]models.AddOn
}

func (r *fakeAddOnRepo) ListActiveByBusiness(businessID string) ([]models.AddOn, error) {
	var out []models.AddOn
	for _, a := range r.addOns {
		if a.BusinessID == businessID && a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAddOnRepo) GetByID(id string) (*models.AddOn, error) {
	if a, ok := r.addOns[id]; ok {
		return &a, nil
	}
	return nil, nil
}
func (r *fakeAddOnRepo) Create(a *models.AddOn) error { return nil }
func (r *fakeAddOnRepo) Update(a *models.AddOn) error { return nil }
func (r *fakeAddOnRepo) Delete(id string) error       { return nil }

type fakeProviderRepo struct {
	providers map[string]models.Provider
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	if p, ok := r.providers[id]; ok {
		return &p, nil
	}
	return nil, nil
}
func (r *fakeProviderRepo) GetByEmail(email string) (*models.Provider, error)     { return nil, nil }
func (r *fakeProviderRepo) GetByTokenHash(hash string) (*models.Provider, error)  { return nil, nil }
func (r *fakeProviderRepo) ListByBusiness(businessID string) ([]models.Provider, error) {
	return nil, nil
}
func (r *fakeProviderRepo) Create(p *models.Provider) error { return nil }
func (r *fakeProviderRepo) Update(p *models.Provider) error { return nil }
func (r *fakeProviderRepo) Delete(id string) error          { return nil }

type fakeBookingRepo struct {
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		copy := b
		return &copy, nil
	}
	return nil, nil
}
func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *fakeBookingRepo) ListByBusiness(businessID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BusinessID == businessID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings[b.ID] = *b
	return nil
}
func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.bookings[b.ID] = *b
	return nil
}

type fakeActionRepo struct {
	actions []models.BookingAction
}

func (r *fakeActionRepo) Append(a *models.BookingAction) error {
	r.actions = append(r.actions, *a)
	return nil
}
func (r *fakeActionRepo) ListByBooking(bookingID string) ([]models.BookingAction, error) {
	var out []models.BookingAction
	for _, a := range r.actions {
		if a.BookingID == bookingID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakePromoService struct {
	promo *models.Promotion
	err   error
}

func (s *fakePromoService) ListActive() ([]models.Promotion, error) { return nil, nil }
func (s *fakePromoService) Validate(code, businessID, serviceID string, at time.Time) (*models.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.promo, nil
}
