package models

import "time"

// Savings types for promotions.
const (
	SavingsPercentage = "percentage"
	SavingsFixed      = "fixed"
)

// Promotion is an editorial discount, optionally bound to one business
// and/or one service, redeemable by code inside its validity window.
type Promotion struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	SavingsType     string    `bson:"savings_type" json:"savingsType"` // "percentage" or "fixed"
	SavingsValue    int64     `bson:"savings_value" json:"savingsValue"`
	MaxSavingsCents int64     `bson:"max_savings_cents,omitempty" json:"maxSavingsCents,omitempty"`
	ValidFrom       time.Time `bson:"valid_from" json:"validFrom"`
	ValidUntil      time.Time `bson:"valid_until" json:"validUntil"`
	BusinessID      string    `bson:"business_id,omitempty" json:"businessId,omitempty"`
	ServiceID       string    `bson:"service_id,omitempty" json:"serviceId,omitempty"`
	Code            string    `bson:"code" json:"code"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// SavingsValue semantics: for "percentage" it is a whole percent (15 = 15%);
// for "fixed" it is an amount in cents.
