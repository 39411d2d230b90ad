package customerRepo

import "servana/models"

// CustomerRepository defines methods for customer account data access.
type CustomerRepository interface {
	GetByID(id string) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Create(c *models.Customer) error
	Update(c *models.Customer) error
	Delete(id string) error
}

// LocationRepository defines methods for saved customer addresses.
type LocationRepository interface {
	GetByID(id string) (*models.CustomerLocation, error)
	ListByCustomer(customerID string) ([]models.CustomerLocation, error)
	// GetPrimary retrieves the customer's primary location, or nil when
	// none is set.
	GetPrimary(customerID string) (*models.CustomerLocation, error)
	Create(l *models.CustomerLocation) error
	Update(l *models.CustomerLocation) error
	Delete(id, customerID string) error
	// SetPrimary marks exactly one of the customer's locations as primary
	// in a single atomic update.
	SetPrimary(customerID, locationID string) error
}
