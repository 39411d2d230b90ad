package handlers

import (
	"net/http"
	"strconv"
	"time"

	booking "servana/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingFlowHandler drives the multi-step booking wizard over the
// server-held draft session.
type BookingFlowHandler struct {
	Svc booking.SessionService
}

// Slots returns the bookable time slots for a day plus the month's date
// options for the picker.
func (h *BookingFlowHandler) Slots(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if y := c.Query("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil {
			year = v
		}
	}
	if m := c.Query("month"); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v >= 1 && v <= 12 {
			month = time.Month(v)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"times": booking.TimeSlots(),
		"dates": booking.MonthDates(year, month, now),
	})
}

// Start begins a draft from the service selector.
func (h *BookingFlowHandler) Start(c *gin.Context) {
	var input booking.StartDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.CustomerID = c.GetString("customerID")

	draft, err := h.Svc.StartDraft(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": draft.SessionID, "draft": draft})
}

// Get returns the current draft.
func (h *BookingFlowHandler) Get(c *gin.Context) {
	draft, err := h.Svc.GetDraft(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Businesses lists the businesses eligible for the draft's service and date.
func (h *BookingFlowHandler) Businesses(c *gin.Context) {
	businesses, err := h.Svc.EligibleBusinesses(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// ChooseBusiness records the chosen business on the draft.
func (h *BookingFlowHandler) ChooseBusiness(c *gin.Context) {
	var input struct {
		BusinessID string `json:"businessId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BusinessID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "businessId is required"})
		return
	}

	draft, err := h.Svc.ChooseBusiness(c.Param("sessionID"), input.BusinessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Configure applies line items, provider preference, delivery choice and the
// mobile-service address to the draft.
func (h *BookingFlowHandler) Configure(c *gin.Context) {
	var input booking.ConfigureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.Configure(c.Param("sessionID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Summary returns the itemized checkout summary.
func (h *BookingFlowHandler) Summary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Checkout finalizes the draft into a booking.
func (h *BookingFlowHandler) Checkout(c *gin.Context) {
	var input booking.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.CustomerID = c.GetString("customerID")

	confirmation, err := h.Svc.Checkout(c.Param("sessionID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// Cancel discards the draft.
func (h *BookingFlowHandler) Cancel(c *gin.Context) {
	if err := h.Svc.CancelDraft(c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
