package catalogRepo

import "servana/models"

// ServiceRepository defines methods for catalog service data access.
type ServiceRepository interface {
	// GetByID retrieves a catalog service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// ListFeatured retrieves featured services, newest first, up to limit.
	ListFeatured(limit int64) ([]models.Service, error)
	// ListPopular retrieves popular services, newest first, up to limit.
	ListPopular(limit int64) ([]models.Service, error)
	// ListByCategory retrieves services in a category.
	ListByCategory(category string) ([]models.Service, error)
	// Create inserts a new catalog entry.
	Create(svc *models.Service) error
	// Update modifies an existing catalog entry.
	Update(svc *models.Service) error
}
