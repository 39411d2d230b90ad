package handlers

import (
	"errors"
	"net/http"
	"time"

	promotionSvc "servana/services/promotion"

	"github.com/gin-gonic/gin"
)

// PromotionHandler serves the public promotions surface.
type PromotionHandler struct {
	Svc promotionSvc.Service
}

// ListActive returns promotions currently inside their validity window.
func (h *PromotionHandler) ListActive(c *gin.Context) {
	promos, err := h.Svc.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promotions": promos})
}

// ValidateCode checks a promo code against its window and bindings for a
// prospective booking.
func (h *PromotionHandler) ValidateCode(c *gin.Context) {
	var input struct {
		Code       string `json:"code"`
		BusinessID string `json:"businessId,omitempty"`
		ServiceID  string `json:"serviceId,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	promo, err := h.Svc.Validate(input.Code, input.BusinessID, input.ServiceID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, promotionSvc.ErrUnknownCode):
			c.JSON(http.StatusNotFound, gin.H{"valid": false, "error": err.Error()})
		case errors.Is(err, promotionSvc.ErrOutsideWindow), errors.Is(err, promotionSvc.ErrNotApplicable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "error": err.Error()})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "promotion": promo})
}
