package catalog

import (
	"errors"
	"fmt"

	catalogRepo "servana/database/repository/catalog"
	"servana/models"
)

// ErrNotFound is returned when a catalog entry does not exist.
var ErrNotFound = errors.New("service not found")

const (
	featuredLimit = 6
	popularLimit  = 12
)

// Service exposes the public catalog reads.
type Service interface {
	FeaturedServices() ([]models.Service, error)
	PopularServices() ([]models.Service, error)
	ServicesByCategory(category string) ([]models.Service, error)
	GetService(id string) (*models.Service, error)
}

// DefaultCatalogService implements Service.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

// FeaturedServices returns the homepage featured carousel, capped at six.
func (s *DefaultCatalogService) FeaturedServices() ([]models.Service, error) {
	return s.Repo.ListFeatured(featuredLimit)
}

// PopularServices returns the popular grid, capped at twelve.
func (s *DefaultCatalogService) PopularServices() ([]models.Service, error) {
	return s.Repo.ListPopular(popularLimit)
}

// ServicesByCategory lists the catalog entries under one category.
func (s *DefaultCatalogService) ServicesByCategory(category string) ([]models.Service, error) {
	return s.Repo.ListByCategory(category)
}

// GetService retrieves a single catalog service.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", id, ErrNotFound)
	}
	return svc, nil
}
