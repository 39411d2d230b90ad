package booking

import (
	bookingRepo "servana/database/repository/booking"
	businessRepo "servana/database/repository/business"
	catalogRepo "servana/database/repository/catalog"
	providerRepo "servana/database/repository/provider"
	"servana/models"
	"servana/services/notification"
	"servana/services/promotion"
	"servana/services/tasks"
)

// StartDraftInput begins the flow: a service plus the desired date and time,
// with optional promotion/business pass-through carried from the entry URL.
type StartDraftInput struct {
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PromotionCode string `json:"promotionCode,omitempty"`
	BusinessID    string `json:"businessId,omitempty"`
	CustomerID    string `json:"-"` // from the session, when authenticated
}

// ConfigureInput is the line-item configuration step.
type ConfigureInput struct {
	Services         []models.ServiceSelection `json:"services"`
	AddOns           []models.AddOnSelection   `json:"addOns,omitempty"`
	ProviderID       string                    `json:"providerId,omitempty"` // empty = no preference
	DeliveryChoice   string                    `json:"deliveryChoice,omitempty"`
	CustomerLocation string                    `json:"customerLocation,omitempty"`
	SpecialRequests  string                    `json:"specialRequests,omitempty"`
}

// CheckoutInput finalizes the draft. CustomerID comes from the session when
// authenticated; guests supply contact fields instead.
type CheckoutInput struct {
	CustomerID string `json:"-"`
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}

// SessionService manages the multi-step booking flow through a server-held
// draft.
type SessionService interface {
	StartDraft(input StartDraftInput) (*models.BookingDraft, error)
	GetDraft(sessionID string) (*models.BookingDraft, error)
	EligibleBusinesses(sessionID string) ([]models.Business, error)
	ChooseBusiness(sessionID, businessID string) (*models.BookingDraft, error)
	Configure(sessionID string, input ConfigureInput) (*models.BookingDraft, error)
	Summary(sessionID string) (*models.CheckoutSummary, error)
	Checkout(sessionID string, input CheckoutInput) (*models.BookingConfirmation, error)
	CancelDraft(sessionID string) error
}

// DefaultBookingSessionService implements SessionService.
type DefaultBookingSessionService struct {
	Drafts       DraftStore
	CatalogRepo  catalogRepo.ServiceRepository
	BusinessRepo businessRepo.BusinessRepository
	OfferingRepo businessRepo.OfferingRepository
	AddOnRepo    businessRepo.AddOnRepository
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
	ActionRepo   bookingRepo.ActionRepository
	PromoSvc     promotion.Service
	Notifier     notification.NotificationService
	Reminders    tasks.ReminderScheduler
}
