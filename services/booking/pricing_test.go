package booking

import (
	"testing"

	"servana/models"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	items := []models.LineItem{
		{Name: "Deep Clean", UnitPriceCents: 6000, Quantity: 2},
		{Name: "Inside Fridge", UnitPriceCents: 1550, Quantity: 1},
	}
	assert.Equal(t, int64(13550), Subtotal(items))
	assert.Equal(t, int64(0), Subtotal(nil))
}

func TestSummaryLines(t *testing.T) {
	items := []models.LineItem{
		{Name: "Deep Clean", UnitPriceCents: 6000, Quantity: 1},
		{Name: "Inside Fridge", UnitPriceCents: 1550, Quantity: 2},
	}
	lines := SummaryLines(items)
	assert.Equal(t, []string{
		"Deep Clean × 1 — $60",
		"Inside Fridge × 2 — $31",
	}, lines)
}

func TestSummaryLinesFractional(t *testing.T) {
	items := []models.LineItem{
		{Name: "Quick Trim", UnitPriceCents: 1275, Quantity: 1},
	}
	assert.Equal(t, []string{"Quick Trim × 1 — $12.75"}, SummaryLines(items))
}
