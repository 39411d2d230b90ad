package promotionRepo

import "servana/models"

// PromotionRepository defines methods for promotion data access.
type PromotionRepository interface {
	GetByID(id string) (*models.Promotion, error)
	// GetByCode retrieves a promotion by its promo code, or nil when the
	// code is unknown.
	GetByCode(code string) (*models.Promotion, error)
	// ListActive retrieves promotions whose validity window contains now.
	ListActive() ([]models.Promotion, error)
	Create(p *models.Promotion) error
	Delete(id string) error
}
