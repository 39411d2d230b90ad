package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier(t *testing.T) {
	ctx := context.Background()
	c := KeywordClassifier{}

	cases := map[string]string{
		"How do I book a cleaning?":            IntentBookingHelp,
		"I need to schedule an appointment":    IntentBookingHelp,
		"Can I cancel my booking?":             IntentCancellation,
		"When do I get my refund":              IntentCancellation,
		"how much does a deep clean cost":      IntentPricing,
		"what's the price for a trim":          IntentPricing,
		"hello there":                          IntentOther,
	}
	for text, want := range cases {
		got, err := c.Classify(ctx, text)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "message: %s", text)
	}
}

func TestRespond(t *testing.T) {
	svc := &Service{Classifier: KeywordClassifier{}}

	reply := svc.Respond(context.Background(), "I want to cancel")
	assert.Equal(t, IntentCancellation, reply.Intent)
	assert.NotEmpty(t, reply.Message)

	reply = svc.Respond(context.Background(), "weather today?")
	assert.Equal(t, IntentOther, reply.Intent)
}
