package customer

import (
	"fmt"
	"strings"

	"servana/models"

	"github.com/google/uuid"
)

// ListLocations retrieves the customer's saved addresses, primary first.
func (s *DefaultCustomerService) ListLocations(customerID string) ([]models.CustomerLocation, error) {
	return s.Locations.ListByCustomer(customerID)
}

// CreateLocation saves a new address. The customer's first location becomes
// primary automatically; an explicit IsPrimary also reassigns the flag.
func (s *DefaultCustomerService) CreateLocation(customerID string, input LocationInput) (*models.CustomerLocation, error) {
	if err := validateLocation(input); err != nil {
		return nil, err
	}

	existing, err := s.Locations.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	loc := &models.CustomerLocation{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Label:      strings.TrimSpace(input.Label),
		Type:       input.Type,
		Street:     strings.TrimSpace(input.Street),
		Unit:       strings.TrimSpace(input.Unit),
		City:       strings.TrimSpace(input.City),
		State:      strings.TrimSpace(input.State),
		PostalCode: strings.TrimSpace(input.PostalCode),
		Geo:        input.Geo,
		IsPrimary:  len(existing) == 0,
	}
	if err := s.Locations.Create(loc); err != nil {
		return nil, err
	}

	if input.IsPrimary && !loc.IsPrimary {
		if err := s.Locations.SetPrimary(customerID, loc.ID); err != nil {
			return nil, err
		}
		loc.IsPrimary = true
	}
	return loc, nil
}

// UpdateLocation edits a saved address owned by the customer.
func (s *DefaultCustomerService) UpdateLocation(customerID, locationID string, input LocationInput) (*models.CustomerLocation, error) {
	loc, err := s.Locations.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.CustomerID != customerID {
		return nil, fmt.Errorf("location %s: %w", locationID, ErrNotFound)
	}
	if err := validateLocation(input); err != nil {
		return nil, err
	}

	loc.Label = strings.TrimSpace(input.Label)
	loc.Type = input.Type
	loc.Street = strings.TrimSpace(input.Street)
	loc.Unit = strings.TrimSpace(input.Unit)
	loc.City = strings.TrimSpace(input.City)
	loc.State = strings.TrimSpace(input.State)
	loc.PostalCode = strings.TrimSpace(input.PostalCode)
	loc.Geo = input.Geo

	if err := s.Locations.Update(loc); err != nil {
		return nil, err
	}

	if input.IsPrimary && !loc.IsPrimary {
		if err := s.Locations.SetPrimary(customerID, loc.ID); err != nil {
			return nil, err
		}
		loc.IsPrimary = true
	}
	return loc, nil
}

// DeleteLocation removes a saved address owned by the customer.
func (s *DefaultCustomerService) DeleteLocation(customerID, locationID string) error {
	return s.Locations.Delete(locationID, customerID)
}

// SetPrimaryLocation marks one address as primary. The repository flips the
// flag across all of the customer's locations in one atomic update, so a
// crash can never leave two primaries behind.
func (s *DefaultCustomerService) SetPrimaryLocation(customerID, locationID string) error {
	loc, err := s.Locations.GetByID(locationID)
	if err != nil {
		return err
	}
	if loc == nil || loc.CustomerID != customerID {
		return fmt.Errorf("location %s: %w", locationID, ErrNotFound)
	}
	return s.Locations.SetPrimary(customerID, locationID)
}

func validateLocation(input LocationInput) error {
	if !models.ValidLocationType(input.Type) {
		return fmt.Errorf("invalid location type %q", input.Type)
	}
	if strings.TrimSpace(input.Street) == "" {
		return fmt.Errorf("street is required")
	}
	if strings.TrimSpace(input.City) == "" {
		return fmt.Errorf("city is required")
	}
	return nil
}
