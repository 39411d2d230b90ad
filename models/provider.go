package models

import "time"

// Staff roles within a business. Role-gated routes accept any of these.
const (
	RoleOwner      = "owner"
	RoleDispatcher = "dispatcher"
	RoleProvider   = "provider"
)

// ValidProviderRole reports whether r is one of the staff roles.
func ValidProviderRole(r string) bool {
	return r == RoleOwner || r == RoleDispatcher || r == RoleProvider
}

// Provider is a staff member who renders services. Belongs to exactly one
// business.
type Provider struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"business_id" json:"businessId"`
	Name            string    `bson:"name" json:"name"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ExperienceYears int       `bson:"experience_years" json:"experienceYears"`
	Rating          float64   `bson:"rating" json:"rating"`
	RatingCount     int       `bson:"rating_count" json:"ratingCount"`
	Role            string    `bson:"role" json:"role"`
	Email           string    `bson:"email" json:"email"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	TokenHash       string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
