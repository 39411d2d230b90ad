package business

import (
	businessRepo "servana/database/repository/business"
	providerRepo "servana/database/repository/provider"
	"servana/models"
)

// OfferingInput configures one catalog service on a business.
type OfferingInput struct {
	ServiceID          string `json:"serviceId"`
	BusinessPriceCents int64  `json:"businessPriceCents"`
	DeliveryType       string `json:"deliveryType"`
	Active             bool   `json:"active"`
}

// AddOnInput configures one business add-on.
type AddOnInput struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Active     bool   `json:"active"`
}

// Service exposes business reads for customers plus setup operations for
// owners.
type Service interface {
	GetBusiness(id string) (*models.Business, error)
	GetDetail(id string) (*models.BusinessDetail, error)
	GetByOwner(ownerID string) (*models.Business, error)
	CreateBusiness(b *models.Business) error
	UpdateBusiness(b *models.Business, actorID string) error
	SetOffering(businessID string, input OfferingInput) (*models.ServiceOffering, error)
	RemoveOffering(businessID, offeringID string) error
	CreateAddOn(businessID string, input AddOnInput) (*models.AddOn, error)
	UpdateAddOn(businessID, addOnID string, input AddOnInput) (*models.AddOn, error)
	RemoveAddOn(businessID, addOnID string) error
}

// DefaultBusinessService implements Service.
type DefaultBusinessService struct {
	Repo      businessRepo.BusinessRepository
	Offerings businessRepo.OfferingRepository
	AddOns    businessRepo.AddOnRepository
	Providers providerRepo.ProviderRepository
	Catalog   CatalogLookup
}

// CatalogLookup is the slice of the catalog the setup wizard needs.
type CatalogLookup interface {
	GetByID(id string) (*models.Service, error)
}
