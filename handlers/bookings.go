package handlers

import (
	"net/http"

	"servana/models"
	booking "servana/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingsHandler serves confirmed bookings: customer history plus the
// staff-side mutations.
type BookingsHandler struct {
	Svc booking.BookingService
}

// ListMine returns the authenticated customer's bookings.
func (h *BookingsHandler) ListMine(c *gin.Context) {
	bookings, err := h.Svc.ListCustomerBookings(c.GetString("customerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListForBusiness returns the staff member's business bookings.
func (h *BookingsHandler) ListForBusiness(c *gin.Context) {
	bookings, err := h.Svc.ListBusinessBookings(c.GetString("businessID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// scopedBooking loads the booking named in the route and enforces tenancy:
// customers only reach their own bookings, staff only their business's. A
// booking outside the caller's scope reads as not found, never as forbidden,
// so booking IDs are not enumerable across tenants.
func scopedBooking(c *gin.Context, svc booking.BookingService) (*models.Booking, bool) {
	b, err := svc.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if customerID := c.GetString("customerID"); customerID != "" && b.CustomerID != customerID {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return nil, false
	}
	if businessID := c.GetString("businessID"); businessID != "" && b.BusinessID != businessID {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return nil, false
	}
	return b, true
}

// Get returns one booking. Customers may only read their own; staff may only
// read their business's.
func (h *BookingsHandler) Get(c *gin.Context) {
	b, ok := scopedBooking(c, h.Svc)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, b)
}

// Actions returns a booking's audit trail.
func (h *BookingsHandler) Actions(c *gin.Context) {
	if _, ok := scopedBooking(c, h.Svc); !ok {
		return
	}
	actions, err := h.Svc.ListActions(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// ChangeStatus moves a booking through its lifecycle.
func (h *BookingsHandler) ChangeStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if _, ok := scopedBooking(c, h.Svc); !ok {
		return
	}

	b, err := h.Svc.ChangeStatus(c.Param("id"), input.Status, h.actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Reassign moves a booking to another provider.
func (h *BookingsHandler) Reassign(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProviderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerId is required"})
		return
	}
	if _, ok := scopedBooking(c, h.Svc); !ok {
		return
	}

	b, err := h.Svc.Reassign(c.Param("id"), input.ProviderID, h.actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Cancel cancels a booking with a reason and optional refund.
func (h *BookingsHandler) Cancel(c *gin.Context) {
	var input struct {
		Reason      string `json:"reason"`
		RefundCents int64  `json:"refundCents,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}
	if _, ok := scopedBooking(c, h.Svc); !ok {
		return
	}

	b, err := h.Svc.Cancel(c.Param("id"), h.actorID(c), input.Reason, input.RefundCents)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Message appends a manual note to the booking's audit trail.
func (h *BookingsHandler) Message(c *gin.Context) {
	var input struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Note == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "note is required"})
		return
	}
	if _, ok := scopedBooking(c, h.Svc); !ok {
		return
	}

	if err := h.Svc.RecordMessage(c.Param("id"), h.actorID(c), input.Note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *BookingsHandler) actorID(c *gin.Context) string {
	if id := c.GetString("customerID"); id != "" {
		return id
	}
	return c.GetString("providerID")
}
