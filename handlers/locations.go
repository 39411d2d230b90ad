package handlers

import (
	"net/http"

	customerSvc "servana/services/customer"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves the customer's saved addresses.
type LocationHandler struct {
	Svc customerSvc.Service
}

// List returns the customer's locations, primary first.
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.Svc.ListLocations(c.GetString("customerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// Create saves a new address.
func (h *LocationHandler) Create(c *gin.Context) {
	var input customerSvc.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	loc, err := h.Svc.CreateLocation(c.GetString("customerID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, loc)
}

// Update edits a saved address.
func (h *LocationHandler) Update(c *gin.Context) {
	var input customerSvc.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	loc, err := h.Svc.UpdateLocation(c.GetString("customerID"), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loc)
}

// Delete removes a saved address.
func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteLocation(c.GetString("customerID"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetPrimary marks one address as the customer's primary.
func (h *LocationHandler) SetPrimary(c *gin.Context) {
	if err := h.Svc.SetPrimaryLocation(c.GetString("customerID"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
