package models

import "time"

// Customer is a marketplace account holder.
type Customer struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	RefreshHash  string    `bson:"refresh_hash,omitempty" json:"-"`
	Favorites    []string  `bson:"favorites,omitempty" json:"favorites,omitempty"` // business IDs
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Location types describe what kind of place a saved address is.
const (
	LocationHome  = "Home"
	LocationCondo = "Condo"
	LocationHotel = "Hotel"
	LocationOther = "Other"
)

// ValidLocationType reports whether t is one of the known location types.
func ValidLocationType(t string) bool {
	return t == LocationHome || t == LocationCondo || t == LocationHotel || t == LocationOther
}

// CustomerLocation is a saved delivery address. At most one location per
// customer carries IsPrimary=true; the repository enforces that with a
// single atomic update.
type CustomerLocation struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customer_id" json:"customerId"`
	Label      string    `bson:"label" json:"label"`
	Type       string    `bson:"type" json:"type"`
	Street     string    `bson:"street" json:"street"`
	Unit       string    `bson:"unit,omitempty" json:"unit,omitempty"`
	City       string    `bson:"city" json:"city"`
	State      string    `bson:"state" json:"state"`
	PostalCode string    `bson:"postal_code" json:"postalCode"`
	Geo        *GeoPoint `bson:"geo,omitempty" json:"geo,omitempty"`
	IsPrimary  bool      `bson:"is_primary" json:"isPrimary"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// FormattedAddress flattens the postal fields into a single display line.
func (l CustomerLocation) FormattedAddress() string {
	addr := l.Street
	if l.Unit != "" {
		addr += ", " + l.Unit
	}
	return addr + ", " + l.City + ", " + l.State + " " + l.PostalCode
}
