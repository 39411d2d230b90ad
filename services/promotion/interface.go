package promotion

import (
	"time"

	promotionRepo "servana/database/repository/promotion"
	"servana/models"
)

// Service defines promotion lookup and validation.
type Service interface {
	// ListActive returns promotions currently inside their validity window.
	ListActive() ([]models.Promotion, error)
	// Validate resolves a promo code against its validity window and any
	// business/service binding. businessID/serviceID describe the booking
	// the code is being applied to.
	Validate(code, businessID, serviceID string, at time.Time) (*models.Promotion, error)
}

// DefaultPromotionService implements Service.
type DefaultPromotionService struct {
	Repo promotionRepo.PromotionRepository
}
