package handlers

import (
	"errors"
	"net/http"

	booking "servana/services/booking"
	paymentSvc "servana/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves Stripe payment operations on bookings.
type PaymentHandler struct {
	Svc      paymentSvc.Service
	Bookings booking.BookingService
}

// CreateIntent opens a payment intent for a booking's total. Only the
// booking's owner can open one.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	if _, ok := scopedBooking(c, h.Bookings); !ok {
		return
	}
	result, err := h.Svc.CreateIntent(c.Param("id"))
	if err != nil {
		if errors.Is(err, paymentSvc.ErrNotPayable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Confirm settles the booking's payment status against Stripe.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	if _, ok := scopedBooking(c, h.Bookings); !ok {
		return
	}
	b, err := h.Svc.ConfirmPayment(c.Param("id"))
	if err != nil {
		if errors.Is(err, paymentSvc.ErrNotPayable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": b.ID, "paymentStatus": b.PaymentStatus, "status": b.Status})
}
