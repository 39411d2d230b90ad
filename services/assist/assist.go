package assist

import (
	"context"
	"strings"
)

// Intents the support assistant recognizes.
const (
	IntentBookingHelp  = "booking_help"
	IntentCancellation = "cancellation"
	IntentPricing      = "pricing"
	IntentOther        = "other"
)

// IntentClassifier maps a free-form support message to one intent.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// Reply is the assistant's canned answer for a message.
type Reply struct {
	Intent  string   `json:"intent"`
	Message string   `json:"message"`
	Actions []string `json:"actions,omitempty"`
}

// Service answers support messages with a canned reply per intent.
type Service struct {
	Classifier IntentClassifier
}

// Respond classifies the message and returns the matching reply. A
// classifier failure degrades to the generic reply rather than erroring the
// endpoint.
func (s *Service) Respond(ctx context.Context, text string) Reply {
	intent, err := s.Classifier.Classify(ctx, text)
	if err != nil {
		intent = IntentOther
	}

	switch intent {
	case IntentBookingHelp:
		return Reply{
			Intent:  intent,
			Message: "To book a service, pick a service and a date, choose a business, then check out. I can walk you through any step.",
			Actions: []string{"browse_services", "start_booking"},
		}
	case IntentCancellation:
		return Reply{
			Intent:  intent,
			Message: "You can cancel a booking from your bookings page. Refund eligibility depends on how close to the appointment you cancel.",
			Actions: []string{"view_bookings"},
		}
	case IntentPricing:
		return Reply{
			Intent:  intent,
			Message: "Each business sets its own price for a service, shown before you confirm. Promotions are applied at checkout.",
			Actions: []string{"browse_services", "view_promotions"},
		}
	default:
		return Reply{
			Intent:  IntentOther,
			Message: "Thanks for reaching out. Could you tell me a bit more about what you need help with?",
		}
	}
}

// KeywordClassifier is the default classifier: simple keyword matching, no
// external calls.
type KeywordClassifier struct{}

// Classify matches on keywords, checking cancellation first since "cancel my
// booking" mentions both.
func (KeywordClassifier) Classify(_ context.Context, text string) (string, error) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "cancel") || strings.Contains(lower, "refund"):
		return IntentCancellation, nil
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost") || strings.Contains(lower, "how much"):
		return IntentPricing, nil
	case strings.Contains(lower, "book") || strings.Contains(lower, "schedule") || strings.Contains(lower, "appointment"):
		return IntentBookingHelp, nil
	}
	return IntentOther, nil
}
