package booking

import (
	"fmt"
	"strings"
	"time"

	"servana/models"

	"github.com/google/uuid"
)

// StartDraft validates the date/time selection, creates a new draft with a
// unique session ID and stores it. Promotion and business pass-through
// parameters from the entry URL are carried on the draft untouched.
func (s *DefaultBookingSessionService) StartDraft(input StartDraftInput) (*models.BookingDraft, error) {
	svc, err := s.CatalogRepo.GetByID(input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", input.ServiceID, ErrNotFound)
	}

	if err := ValidateBookingDate(input.Date, time.Now()); err != nil {
		return nil, err
	}
	if !ValidTimeSlot(input.Time) {
		return nil, ValidationError{Msg: fmt.Sprintf("invalid time slot %q", input.Time)}
	}

	draft := &models.BookingDraft{
		SessionID:     uuid.New().String(),
		CustomerID:    input.CustomerID,
		ServiceID:     input.ServiceID,
		Date:          input.Date,
		Time:          input.Time,
		PromotionCode: input.PromotionCode,
	}

	// A business pass-through parameter preselects the business, subject to
	// the same eligibility check as an explicit choice.
	if input.BusinessID != "" {
		if err := s.applyBusiness(draft, input.BusinessID); err != nil {
			return nil, err
		}
	}

	if err := s.Drafts.Save(draft.SessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft retrieves the draft for a session.
func (s *DefaultBookingSessionService) GetDraft(sessionID string) (*models.BookingDraft, error) {
	return s.Drafts.Get(sessionID)
}

// EligibleBusinesses lists businesses with an active offering for the
// draft's service that are open on the selected weekday.
func (s *DefaultBookingSessionService) EligibleBusinesses(sessionID string) ([]models.Business, error) {
	draft, err := s.Drafts.Get(sessionID)
	if err != nil {
		return nil, err
	}

	ids, err := s.OfferingRepo.ListBusinessIDsOffering(draft.ServiceID)
	if err != nil {
		return nil, err
	}
	businesses, err := s.BusinessRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	eligible := businesses[:0]
	for _, b := range businesses {
		if businessOpenOn(b, draft.Date) {
			eligible = append(eligible, b)
		}
	}
	return eligible, nil
}

// ChooseBusiness records the chosen business on the draft and resolves the
// delivery type from its offering.
func (s *DefaultBookingSessionService) ChooseBusiness(sessionID, businessID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.applyBusiness(draft, businessID); err != nil {
		return nil, err
	}

	// Business changed: previously configured line items no longer price
	// against the right offerings.
	draft.Services = nil
	draft.AddOns = nil
	draft.ProviderID = ""
	draft.TotalCents = 0

	if err := s.Drafts.Save(sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DefaultBookingSessionService) applyBusiness(draft *models.BookingDraft, businessID string) error {
	biz, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		return fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return fmt.Errorf("business %s: %w", businessID, ErrNotFound)
	}
	if !businessOpenOn(*biz, draft.Date) {
		return ValidationError{Msg: "business is closed on the selected date"}
	}

	offering, err := s.OfferingRepo.GetByBusinessAndService(businessID, draft.ServiceID)
	if err != nil {
		return err
	}
	if offering == nil || !offering.Active {
		return ValidationError{Msg: "business does not offer the selected service"}
	}

	draft.BusinessID = businessID
	draft.DeliveryType = offering.DeliveryType
	return nil
}

// Configure applies the line-item configuration to the draft: services and
// add-ons with quantities, provider preference, delivery resolution and the
// mobile-service address. The computed total is stored on the draft.
func (s *DefaultBookingSessionService) Configure(sessionID string, input ConfigureInput) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if draft.BusinessID == "" {
		return nil, ValidationError{Msg: "choose a business before configuring the booking"}
	}
	if len(input.Services) == 0 {
		return nil, ValidationError{Msg: "select at least one service"}
	}

	// An offering of "both_locations" is narrowed by the customer's choice;
	// otherwise the offering's delivery type stands.
	deliveryType := draft.DeliveryType
	if deliveryType == models.DeliveryBothLocations {
		switch input.DeliveryChoice {
		case models.DeliveryCustomerLocation, models.DeliveryBusinessLocation:
			deliveryType = input.DeliveryChoice
		case "":
			return nil, ValidationError{Msg: "choose a delivery location for this service"}
		default:
			return nil, ValidationError{Msg: fmt.Sprintf("invalid delivery choice %q", input.DeliveryChoice)}
		}
	}

	// Mobile service requires a destination address before proceeding.
	if deliveryType == models.DeliveryCustomerLocation && strings.TrimSpace(input.CustomerLocation) == "" {
		return nil, ValidationError{Msg: "a service address is required for mobile service"}
	}

	if input.ProviderID != "" {
		prov, err := s.ProviderRepo.GetByID(input.ProviderID)
		if err != nil {
			return nil, err
		}
		if prov == nil || prov.BusinessID != draft.BusinessID {
			return nil, ValidationError{Msg: "selected provider does not work for this business"}
		}
	}

	draft.Services = input.Services
	draft.AddOns = input.AddOns
	draft.ProviderID = input.ProviderID
	draft.DeliveryType = deliveryType
	draft.SpecialRequests = input.SpecialRequests
	if deliveryType == models.DeliveryCustomerLocation {
		draft.CustomerLocation = strings.TrimSpace(input.CustomerLocation)
	} else {
		draft.CustomerLocation = ""
	}

	items, err := s.buildLineItems(draft)
	if err != nil {
		return nil, err
	}
	draft.TotalCents = Subtotal(items)

	if err := s.Drafts.Save(sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// CancelDraft discards the draft for a session.
func (s *DefaultBookingSessionService) CancelDraft(sessionID string) error {
	return s.Drafts.Delete(sessionID)
}

// buildLineItems reprices the draft's selections against the business's
// current offerings and add-ons, producing the denormalized line items
// frozen into the booking at checkout.
func (s *DefaultBookingSessionService) buildLineItems(draft *models.BookingDraft) ([]models.LineItem, error) {
	var items []models.LineItem

	for _, sel := range draft.Services {
		if sel.Quantity <= 0 {
			return nil, ValidationError{Msg: "service quantity must be positive"}
		}
		offering, err := s.OfferingRepo.GetByBusinessAndService(draft.BusinessID, sel.ServiceID)
		if err != nil {
			return nil, err
		}
		if offering == nil || !offering.Active {
			return nil, ValidationError{Msg: fmt.Sprintf("service %s is not offered by this business", sel.ServiceID)}
		}
		svc, err := s.CatalogRepo.GetByID(sel.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, fmt.Errorf("service %s: %w", sel.ServiceID, ErrNotFound)
		}
		items = append(items, models.LineItem{
			Kind:           models.LineItemService,
			RefID:          sel.ServiceID,
			Name:           svc.Name,
			UnitPriceCents: offering.BusinessPriceCents,
			Quantity:       sel.Quantity,
		})
	}

	for _, sel := range draft.AddOns {
		if sel.Quantity <= 0 {
			return nil, ValidationError{Msg: "add-on quantity must be positive"}
		}
		addOn, err := s.AddOnRepo.GetByID(sel.AddOnID)
		if err != nil {
			return nil, err
		}
		if addOn == nil || addOn.BusinessID != draft.BusinessID || !addOn.Active {
			return nil, ValidationError{Msg: fmt.Sprintf("add-on %s is not offered by this business", sel.AddOnID)}
		}
		items = append(items, models.LineItem{
			Kind:           models.LineItemAddOn,
			RefID:          sel.AddOnID,
			Name:           addOn.Name,
			UnitPriceCents: addOn.PriceCents,
			Quantity:       sel.Quantity,
		})
	}

	return items, nil
}

// businessOpenOn reports whether the business is open on the date's weekday.
func businessOpenOn(b models.Business, date string) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	if b.Hours == nil {
		return true // no hours recorded means no restriction
	}
	day, ok := b.Hours[strings.ToLower(d.Weekday().String())]
	if !ok {
		return true
	}
	return !day.Closed
}
