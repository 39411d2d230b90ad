package handlers

import (
	"errors"
	"net/http"

	booking "servana/services/booking"
	businessSvc "servana/services/business"
	catalogSvc "servana/services/catalog"
	customerSvc "servana/services/customer"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP status taxonomy: validation
// failures are 400s, missing records 404s, everything else a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case booking.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, catalogSvc.ErrNotFound),
		errors.Is(err, businessSvc.ErrNotFound),
		errors.Is(err, customerSvc.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, businessSvc.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}
