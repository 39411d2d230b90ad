package booking

import (
	"fmt"

	"servana/models"
	"servana/utils"
)

// Subtotal sums unit price times quantity over all line items. No tax, no
// rounding beyond whole cents.
func Subtotal(items []models.LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}

// SummaryLines renders one display line per item, e.g. "Deep Clean × 2 — $120".
func SummaryLines(items []models.LineItem) []string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lineTotal := it.UnitPriceCents * int64(it.Quantity)
		lines = append(lines, fmt.Sprintf("%s × %d — %s", it.Name, it.Quantity, utils.FormatUSD(lineTotal)))
	}
	return lines
}
