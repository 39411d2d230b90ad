package assist

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClassifier classifies support messages with the Gemini API. Used
// when GEMINI_API_KEY is configured; otherwise the keyword classifier runs.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

// NewGeminiClassifier creates the Gemini-backed classifier.
func NewGeminiClassifier(ctx context.Context, apiKey string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClassifier{model: client.GenerativeModel("models/gemini-1.5-flash")}, nil
}

const classifyPrompt = `Classify this customer support message into exactly one of:
booking_help, cancellation, pricing, other.
Reply with only the label.

Message: %s`

// Classify asks the model for a single intent label. Anything outside the
// known set falls back to "other".
func (g *GeminiClassifier) Classify(ctx context.Context, text string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(classifyPrompt, text)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return IntentOther, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	switch label := strings.TrimSpace(strings.ToLower(sb.String())); label {
	case IntentBookingHelp, IntentCancellation, IntentPricing:
		return label, nil
	default:
		return IntentOther, nil
	}
}
