package models

import "time"

// Business types mirror how operators register themselves.
const (
	BusinessIndependent = "independent"
	BusinessSmall       = "small_business"
	BusinessFranchise   = "franchise"
	BusinessEnterprise  = "enterprise"
	BusinessOther       = "other"
)

// Business represents a registered service business.
type Business struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Type         string    `bson:"type" json:"type"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Verified     bool      `bson:"verified" json:"verified"`
	Hours        WeekHours `bson:"hours" json:"hours"`
	CoverURL     string    `bson:"cover_url,omitempty" json:"coverUrl,omitempty"`
	LogoURL      string    `bson:"logo_url,omitempty" json:"logoUrl,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID      string    `bson:"owner_id" json:"ownerId"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ValidBusinessType reports whether t is one of the known business types.
func ValidBusinessType(t string) bool {
	switch t {
	case BusinessIndependent, BusinessSmall, BusinessFranchise, BusinessEnterprise, BusinessOther:
		return true
	}
	return false
}

// ServiceOffering links a business to a catalog service with its own price
// and delivery type. One offering per (business, service) pair.
type ServiceOffering struct {
	ID                 string    `bson:"id" json:"id"`
	BusinessID         string    `bson:"business_id" json:"businessId"`
	ServiceID          string    `bson:"service_id" json:"serviceId"`
	BusinessPriceCents int64     `bson:"business_price_cents" json:"businessPriceCents"`
	DeliveryType       string    `bson:"delivery_type" json:"deliveryType"`
	Active             bool      `bson:"active" json:"active"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}

// AddOn is a business-priced extra that can be attached to a booking.
type AddOn struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"business_id" json:"businessId"`
	Name       string `bson:"name" json:"name"`
	PriceCents int64  `bson:"price_cents" json:"priceCents"`
	Active     bool   `bson:"active" json:"active"`
}

// BusinessDetail aggregates everything the booking configurator needs in a
// single response: the business, its active offerings, add-ons and staff.
type BusinessDetail struct {
	Business  Business          `json:"business"`
	Offerings []ServiceOffering `json:"offerings"`
	AddOns    []AddOn           `json:"addOns"`
	Providers []Provider        `json:"providers"`
}
