package models

import "time"

// Booking statuses.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// ValidBookingStatus reports whether s is one of the booking statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Line item kinds.
const (
	LineItemService = "service"
	LineItemAddOn   = "addon"
)

// LineItem is a denormalized snapshot of a priced selection at checkout
// time. Prices are frozen here so later catalog edits do not rewrite
// history.
type LineItem struct {
	Kind           string `bson:"kind" json:"kind"` // "service" or "addon"
	RefID          string `bson:"ref_id" json:"refId"`
	Name           string `bson:"name" json:"name"`
	UnitPriceCents int64  `bson:"unit_price_cents" json:"unitPriceCents"`
	Quantity       int    `bson:"quantity" json:"quantity"`
}

// GuestContact holds the contact block for unauthenticated bookings. A
// booking carries either a CustomerID or a GuestContact, never both.
type GuestContact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Booking is a confirmed booking record.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	BusinessID       string        `bson:"business_id" json:"businessId"`
	CustomerID       string        `bson:"customer_id,omitempty" json:"customerId,omitempty"`
	Guest            *GuestContact `bson:"guest,omitempty" json:"guest,omitempty"`
	Date             string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time             string        `bson:"time" json:"time"` // "HH:MM"
	DeliveryType     string        `bson:"delivery_type" json:"deliveryType"`
	CustomerLocation string        `bson:"customer_location,omitempty" json:"customerLocation,omitempty"`
	ProviderID       string        `bson:"provider_id,omitempty" json:"providerId,omitempty"` // empty = no preference
	SpecialRequests  string        `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	Status           string        `bson:"status" json:"status"`
	PaymentStatus    string        `bson:"payment_status" json:"paymentStatus"`
	PaymentIntentID  string        `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	TotalCents       int64         `bson:"total_cents" json:"totalCents"`
	DiscountCents    int64         `bson:"discount_cents,omitempty" json:"discountCents,omitempty"`
	PromotionID      string        `bson:"promotion_id,omitempty" json:"promotionId,omitempty"`
	Items            []LineItem    `bson:"items" json:"items"`
	CancelledAt      *time.Time    `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
	CancelledBy      string        `bson:"cancelled_by,omitempty" json:"cancelledBy,omitempty"`
	CancelReason     string        `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
	RefundCents      int64         `bson:"refund_cents,omitempty" json:"refundCents,omitempty"`
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Booking action types written to the audit log.
const (
	ActionCreated       = "created"
	ActionStatusChange  = "status_change"
	ActionReassigned    = "reassigned"
	ActionCancelled     = "cancelled"
	ActionManualMessage = "manual_message"
)

// BookingAction is an append-only audit row recorded alongside booking
// mutations. It captures old/new value snapshots and the acting user.
type BookingAction struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Action    string    `bson:"action" json:"action"`
	OldValue  string    `bson:"old_value,omitempty" json:"oldValue,omitempty"`
	NewValue  string    `bson:"new_value,omitempty" json:"newValue,omitempty"`
	ActorID   string    `bson:"actor_id" json:"actorId"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
