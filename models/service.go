package models

import "time"

// Service is a read-only catalog entry. Businesses price and deliver their
// own instances of it through offerings.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description" json:"description"`
	MinPriceCents   int64     `bson:"min_price_cents" json:"minPriceCents"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	ImageURL        string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Subcategory     string    `bson:"subcategory" json:"subcategory"`
	Category        string    `bson:"category" json:"category"`
	IsFeatured      bool      `bson:"is_featured" json:"isFeatured"`
	IsPopular       bool      `bson:"is_popular" json:"isPopular"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
