package promotion

import (
	"errors"
	"fmt"
	"time"

	"servana/models"
)

var (
	// ErrUnknownCode signals a promo code that matches no promotion.
	ErrUnknownCode = errors.New("unknown promo code")
	// ErrOutsideWindow signals a code used before or after its validity window.
	ErrOutsideWindow = errors.New("promotion is not currently valid")
	// ErrNotApplicable signals a code bound to a different business or service.
	ErrNotApplicable = errors.New("promotion does not apply to this booking")
)

// ListActive returns promotions currently inside their validity window.
func (s *DefaultPromotionService) ListActive() ([]models.Promotion, error) {
	promos, err := s.Repo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promos, nil
}

// Validate resolves a promo code against its validity window and bindings.
func (s *DefaultPromotionService) Validate(code, businessID, serviceID string, at time.Time) (*models.Promotion, error) {
	promo, err := s.Repo.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}
	if promo == nil {
		return nil, ErrUnknownCode
	}
	if at.Before(promo.ValidFrom) || at.After(promo.ValidUntil) {
		return nil, ErrOutsideWindow
	}
	if promo.BusinessID != "" && promo.BusinessID != businessID {
		return nil, ErrNotApplicable
	}
	if promo.ServiceID != "" && promo.ServiceID != serviceID {
		return nil, ErrNotApplicable
	}
	return promo, nil
}

// Discount computes the discount in cents a promotion takes off a subtotal.
// Percentage savings are capped by MaxSavingsCents when set; no discount
// ever exceeds the subtotal.
func Discount(p models.Promotion, subtotalCents int64) int64 {
	var discount int64
	switch p.SavingsType {
	case models.SavingsPercentage:
		discount = subtotalCents * p.SavingsValue / 100
	case models.SavingsFixed:
		discount = p.SavingsValue
	default:
		return 0
	}
	if p.MaxSavingsCents > 0 && discount > p.MaxSavingsCents {
		discount = p.MaxSavingsCents
	}
	if discount > subtotalCents {
		discount = subtotalCents
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
