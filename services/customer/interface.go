package customer

import (
	customerRepo "servana/database/repository/customer"
	"servana/models"
)

// RegisterInput creates a new customer account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// LoginInput authenticates an existing customer.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the issued session: a short-lived access token and a
// long-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ProfileUpdate carries editable profile fields. Empty fields are left
// unchanged.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	FCMToken string `json:"fcmToken,omitempty"`
}

// LocationInput creates or edits a saved address.
type LocationInput struct {
	Label      string           `json:"label"`
	Type       string           `json:"type"`
	Street     string           `json:"street"`
	Unit       string           `json:"unit,omitempty"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	PostalCode string           `json:"postalCode"`
	Geo        *models.GeoPoint `json:"geo,omitempty"`
	IsPrimary  bool             `json:"isPrimary,omitempty"`
}

// Service covers customer accounts: auth, profile, saved locations and
// favorites.
type Service interface {
	Register(input RegisterInput) (*models.Customer, *TokenPair, error)
	Login(input LoginInput) (*models.Customer, *TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	Logout(customerID string) error

	GetProfile(customerID string) (*models.Customer, error)
	UpdateProfile(customerID string, input ProfileUpdate) (*models.Customer, error)
	AddFavorite(customerID, businessID string) error
	RemoveFavorite(customerID, businessID string) error

	ListLocations(customerID string) ([]models.CustomerLocation, error)
	CreateLocation(customerID string, input LocationInput) (*models.CustomerLocation, error)
	UpdateLocation(customerID, locationID string, input LocationInput) (*models.CustomerLocation, error)
	DeleteLocation(customerID, locationID string) error
	SetPrimaryLocation(customerID, locationID string) error
}

// DefaultCustomerService implements Service.
type DefaultCustomerService struct {
	Repo      customerRepo.CustomerRepository
	Locations customerRepo.LocationRepository
}
