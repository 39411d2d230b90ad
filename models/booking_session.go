package models

// ServiceSelection is one configured line of the draft: a service offered by
// the chosen business, with a quantity.
type ServiceSelection struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

// AddOnSelection is one configured add-on line of the draft.
type AddOnSelection struct {
	AddOnID  string `json:"addOnId"`
	Quantity int    `json:"quantity"`
}

// BookingDraft holds the in-progress booking between flow steps. It lives
// server-side in Redis under the session ID, so a page reload on the client
// does not discard the flow and concurrent tabs see one draft.
type BookingDraft struct {
	SessionID        string             `json:"sessionId"`
	CustomerID       string             `json:"customerId,omitempty"` // empty for guests until checkout
	ServiceID        string             `json:"serviceId"`
	Date             string             `json:"date"` // "YYYY-MM-DD"
	Time             string             `json:"time"` // "HH:MM"
	BusinessID       string             `json:"businessId,omitempty"`
	DeliveryType     string             `json:"deliveryType,omitempty"`
	Services         []ServiceSelection `json:"services,omitempty"`
	AddOns           []AddOnSelection   `json:"addOns,omitempty"`
	ProviderID       string             `json:"providerId,omitempty"` // empty = no preference
	CustomerLocation string             `json:"customerLocation,omitempty"`
	SpecialRequests  string             `json:"specialRequests,omitempty"`
	PromotionCode    string             `json:"promotionCode,omitempty"` // pass-through from the entry URL
	TotalCents       int64              `json:"totalCents"`
}

// DraftResponse is returned to the client after every draft mutation.
type DraftResponse struct {
	SessionID string        `json:"sessionId"`
	Draft     *BookingDraft `json:"draft,omitempty"`
}

// CheckoutSummary is the itemized summary rendered at checkout and echoed
// back on confirmation.
type CheckoutSummary struct {
	Lines         []string `json:"lines"` // e.g. "Deep Clean × 1 — $60"
	SubtotalCents int64    `json:"subtotalCents"`
	DiscountCents int64    `json:"discountCents,omitempty"`
	TotalCents    int64    `json:"totalCents"`
	Total         string   `json:"total"` // display form
}

// BookingConfirmation is the final response returned after checkout.
type BookingConfirmation struct {
	BookingID string          `json:"bookingId"`
	Status    string          `json:"status"`
	Summary   CheckoutSummary `json:"summary"`
	Guest     bool            `json:"guest"`
}
