package handlers

import (
	"errors"
	"net/http"

	customerSvc "servana/services/customer"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves account auth and profile routes.
type CustomerHandler struct {
	Svc customerSvc.Service
}

// Register creates an account and signs the customer in.
func (h *CustomerHandler) Register(c *gin.Context) {
	var input customerSvc.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cust, pair, err := h.Svc.Register(input)
	if err != nil {
		if errors.Is(err, customerSvc.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": cust, "tokens": pair})
}

// Login authenticates and issues a token pair.
func (h *CustomerHandler) Login(c *gin.Context) {
	var input customerSvc.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cust, pair, err := h.Svc.Login(input)
	if err != nil {
		if errors.Is(err, customerSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cust, "tokens": pair})
}

// Refresh rotates the token pair.
func (h *CustomerHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	pair, err := h.Svc.Refresh(input.RefreshToken)
	if err != nil {
		if errors.Is(err, customerSvc.ErrInvalidRefresh) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}

// Logout revokes the session server-side.
func (h *CustomerHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.GetString("customerID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated customer's profile.
func (h *CustomerHandler) Me(c *gin.Context) {
	cust, err := h.Svc.GetProfile(c.GetString("customerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// UpdateMe applies profile edits.
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	var input customerSvc.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cust, err := h.Svc.UpdateProfile(c.GetString("customerID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// AddFavorite saves a business to the customer's favorites.
func (h *CustomerHandler) AddFavorite(c *gin.Context) {
	if err := h.Svc.AddFavorite(c.GetString("customerID"), c.Param("businessID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveFavorite drops a business from the customer's favorites.
func (h *CustomerHandler) RemoveFavorite(c *gin.Context) {
	if err := h.Svc.RemoveFavorite(c.GetString("customerID"), c.Param("businessID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
