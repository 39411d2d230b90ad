package customer

import (
	"strings"

	"servana/models"
)

// GetProfile retrieves the customer's account record.
func (s *DefaultCustomerService) GetProfile(customerID string) (*models.Customer, error) {
	cust, err := s.Repo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, ErrNotFound
	}
	return cust, nil
}

// UpdateProfile applies the non-empty fields of the update.
func (s *DefaultCustomerService) UpdateProfile(customerID string, input ProfileUpdate) (*models.Customer, error) {
	cust, err := s.GetProfile(customerID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(input.Name); v != "" {
		cust.Name = v
	}
	if v := strings.TrimSpace(input.Phone); v != "" {
		cust.Phone = v
	}
	if input.FCMToken != "" {
		cust.FCMToken = input.FCMToken
	}

	if err := s.Repo.Update(cust); err != nil {
		return nil, err
	}
	return cust, nil
}

// AddFavorite saves a business to the customer's favorites. Adding an
// existing favorite is a no-op.
func (s *DefaultCustomerService) AddFavorite(customerID, businessID string) error {
	cust, err := s.GetProfile(customerID)
	if err != nil {
		return err
	}
	for _, id := range cust.Favorites {
		if id == businessID {
			return nil
		}
	}
	cust.Favorites = append(cust.Favorites, businessID)
	return s.Repo.Update(cust)
}

// RemoveFavorite drops a business from the customer's favorites.
func (s *DefaultCustomerService) RemoveFavorite(customerID, businessID string) error {
	cust, err := s.GetProfile(customerID)
	if err != nil {
		return err
	}
	kept := cust.Favorites[:0]
	for _, id := range cust.Favorites {
		if id != businessID {
			kept = append(kept, id)
		}
	}
	cust.Favorites = kept
	return s.Repo.Update(cust)
}
