package providerRepo

import "servana/models"

// ProviderRepository defines methods for provider (staff) data access.
type ProviderRepository interface {
	GetByID(id string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	// GetByTokenHash retrieves the provider holding the given session
	// token hash, for auth middleware lookups.
	GetByTokenHash(hash string) (*models.Provider, error)
	ListByBusiness(businessID string) ([]models.Provider, error)
	Create(p *models.Provider) error
	Update(p *models.Provider) error
	Delete(id string) error
}
