package businessRepo

import "servana/models"

// BusinessRepository defines methods for business data access.
type BusinessRepository interface {
	GetByID(id string) (*models.Business, error)
	GetByOwner(ownerID string) (*models.Business, error)
	GetByIDs(ids []string) ([]models.Business, error)
	Create(b *models.Business) error
	Update(b *models.Business) error
	Delete(id string) error
}

// OfferingRepository defines methods for business-service offering access.
type OfferingRepository interface {
	// ListActiveByBusiness retrieves a business's active offerings.
	ListActiveByBusiness(businessID string) ([]models.ServiceOffering, error)
	// GetByBusinessAndService retrieves the one offering for a
	// (business, service) pair, or nil when the business does not offer it.
	GetByBusinessAndService(businessID, serviceID string) (*models.ServiceOffering, error)
	// ListBusinessIDsOffering retrieves the IDs of businesses with an
	// active offering for the service.
	ListBusinessIDsOffering(serviceID string) ([]string, error)
	Upsert(o *models.ServiceOffering) error
	Delete(id string) error
}

// AddOnRepository defines methods for business add-on access.
type AddOnRepository interface {
	ListActiveByBusiness(businessID string) ([]models.AddOn, error)
	GetByID(id string) (*models.AddOn, error)
	Create(a *models.AddOn) error
	Update(a *models.AddOn) error
	Delete(id string) error
}
