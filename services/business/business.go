package business

import (
	"errors"
	"fmt"
	"sync"

	"servana/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a business or one of its records does not
// exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the acting user does not own the business.
var ErrForbidden = errors.New("not the business owner")

// GetBusiness retrieves one business.
func (s *DefaultBusinessService) GetBusiness(id string) (*models.Business, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("business %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// GetDetail aggregates the business with its active offerings, add-ons and
// staff. The three dependent reads run concurrently.
func (s *DefaultBusinessService) GetDetail(id string) (*models.BusinessDetail, error) {
	biz, err := s.GetBusiness(id)
	if err != nil {
		return nil, err
	}

	detail := models.BusinessDetail{Business: *biz}
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		detail.Offerings, errs[0] = s.Offerings.ListActiveByBusiness(id)
	}()
	go func() {
		defer wg.Done()
		detail.AddOns, errs[1] = s.AddOns.ListActiveByBusiness(id)
	}()
	go func() {
		defer wg.Done()
		detail.Providers, errs[2] = s.Providers.ListByBusiness(id)
	}()
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("failed to load business detail: %w", e)
		}
	}
	return &detail, nil
}

// GetByOwner retrieves the business owned by the given staff account.
func (s *DefaultBusinessService) GetByOwner(ownerID string) (*models.Business, error) {
	b, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("owner %s: %w", ownerID, ErrNotFound)
	}
	return b, nil
}

// CreateBusiness registers a new business for the setup wizard.
func (s *DefaultBusinessService) CreateBusiness(b *models.Business) error {
	if b.Name == "" {
		return fmt.Errorf("business name is required")
	}
	if !models.ValidBusinessType(b.Type) {
		return fmt.Errorf("invalid business type %q", b.Type)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return s.Repo.Create(b)
}

// UpdateBusiness saves profile edits, rejecting writes by non-owners.
func (s *DefaultBusinessService) UpdateBusiness(b *models.Business, actorID string) error {
	existing, err := s.GetBusiness(b.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != actorID {
		return ErrForbidden
	}
	b.OwnerID = existing.OwnerID
	b.CreatedAt = existing.CreatedAt
	return s.Repo.Update(b)
}

// SetOffering creates or updates the business's offering for a catalog
// service. The repository keeps one offering per (business, service) pair.
func (s *DefaultBusinessService) SetOffering(businessID string, input OfferingInput) (*models.ServiceOffering, error) {
	if _, err := s.GetBusiness(businessID); err != nil {
		return nil, err
	}
	svc, err := s.Catalog.GetByID(input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", input.ServiceID, ErrNotFound)
	}
	if input.BusinessPriceCents <= 0 {
		return nil, fmt.Errorf("offering price must be positive")
	}
	if !models.ValidDeliveryType(input.DeliveryType) {
		return nil, fmt.Errorf("invalid delivery type %q", input.DeliveryType)
	}

	offering := &models.ServiceOffering{
		ID:                 uuid.New().String(),
		BusinessID:         businessID,
		ServiceID:          input.ServiceID,
		BusinessPriceCents: input.BusinessPriceCents,
		DeliveryType:       input.DeliveryType,
		Active:             input.Active,
	}
	if err := s.Offerings.Upsert(offering); err != nil {
		return nil, err
	}
	return offering, nil
}

// RemoveOffering deletes an offering from the business.
func (s *DefaultBusinessService) RemoveOffering(businessID, offeringID string) error {
	if _, err := s.GetBusiness(businessID); err != nil {
		return err
	}
	return s.Offerings.Delete(offeringID)
}

// CreateAddOn adds a new priced extra to the business.
func (s *DefaultBusinessService) CreateAddOn(businessID string, input AddOnInput) (*models.AddOn, error) {
	if _, err := s.GetBusiness(businessID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("add-on name is required")
	}
	if input.PriceCents <= 0 {
		return nil, fmt.Errorf("add-on price must be positive")
	}

	addOn := &models.AddOn{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       input.Name,
		PriceCents: input.PriceCents,
		Active:     input.Active,
	}
	if err := s.AddOns.Create(addOn); err != nil {
		return nil, err
	}
	return addOn, nil
}

// UpdateAddOn edits an existing add-on, checking it belongs to the business.
func (s *DefaultBusinessService) UpdateAddOn(businessID, addOnID string, input AddOnInput) (*models.AddOn, error) {
	addOn, err := s.AddOns.GetByID(addOnID)
	if err != nil {
		return nil, err
	}
	if addOn == nil || addOn.BusinessID != businessID {
		return nil, fmt.Errorf("add-on %s: %w", addOnID, ErrNotFound)
	}
	if input.Name != "" {
		addOn.Name = input.Name
	}
	if input.PriceCents > 0 {
		addOn.PriceCents = input.PriceCents
	}
	addOn.Active = input.Active
	if err := s.AddOns.Update(addOn); err != nil {
		return nil, err
	}
	return addOn, nil
}

// RemoveAddOn deletes an add-on, checking it belongs to the business.
func (s *DefaultBusinessService) RemoveAddOn(businessID, addOnID string) error {
	addOn, err := s.AddOns.GetByID(addOnID)
	if err != nil {
		return err
	}
	if addOn == nil || addOn.BusinessID != businessID {
		return fmt.Errorf("add-on %s: %w", addOnID, ErrNotFound)
	}
	return s.AddOns.Delete(addOnID)
}
