package handlers

import (
	"net/http"

	"servana/models"
	businessSvc "servana/services/business"

	"github.com/gin-gonic/gin"
)

// BusinessHandler serves public business reads plus the owner setup wizard.
type BusinessHandler struct {
	Svc businessSvc.Service
}

// Get returns one business.
func (h *BusinessHandler) Get(c *gin.Context) {
	biz, err := h.Svc.GetBusiness(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// Detail returns the business with its offerings, add-ons and staff in one
// response.
func (h *BusinessHandler) Detail(c *gin.Context) {
	detail, err := h.Svc.GetDetail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Mine returns the staff member's own business.
func (h *BusinessHandler) Mine(c *gin.Context) {
	biz, err := h.Svc.GetBusiness(c.GetString("businessID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// Create registers a new business owned by the acting staff account.
func (h *BusinessHandler) Create(c *gin.Context) {
	var biz models.Business
	if err := c.ShouldBindJSON(&biz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	biz.OwnerID = c.GetString("providerID")

	if err := h.Svc.CreateBusiness(&biz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, biz)
}

// Update saves profile edits to the staff member's business.
func (h *BusinessHandler) Update(c *gin.Context) {
	var biz models.Business
	if err := c.ShouldBindJSON(&biz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	biz.ID = c.GetString("businessID")

	if err := h.Svc.UpdateBusiness(&biz, c.GetString("providerID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// SetOffering creates or updates the business's offering for a service.
func (h *BusinessHandler) SetOffering(c *gin.Context) {
	var input businessSvc.OfferingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	offering, err := h.Svc.SetOffering(c.GetString("businessID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offering)
}

// RemoveOffering deletes an offering.
func (h *BusinessHandler) RemoveOffering(c *gin.Context) {
	if err := h.Svc.RemoveOffering(c.GetString("businessID"), c.Param("offeringID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateAddOn adds a priced extra.
func (h *BusinessHandler) CreateAddOn(c *gin.Context) {
	var input businessSvc.AddOnInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	addOn, err := h.Svc.CreateAddOn(c.GetString("businessID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addOn)
}

// UpdateAddOn edits a priced extra.
func (h *BusinessHandler) UpdateAddOn(c *gin.Context) {
	var input businessSvc.AddOnInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	addOn, err := h.Svc.UpdateAddOn(c.GetString("businessID"), c.Param("addOnID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addOn)
}

// RemoveAddOn deletes a priced extra.
func (h *BusinessHandler) RemoveAddOn(c *gin.Context) {
	if err := h.Svc.RemoveAddOn(c.GetString("businessID"), c.Param("addOnID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
