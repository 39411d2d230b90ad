package handlers

import (
	"net/http"

	providerRepo "servana/database/repository/provider"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ProviderHandler serves staff reads and staff session auth.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

// ListByBusiness returns a business's staff for the provider-preference
// picker.
func (h *ProviderHandler) ListByBusiness(c *gin.Context) {
	providers, err := h.Repo.ListByBusiness(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// Get returns one provider.
func (h *ProviderHandler) Get(c *gin.Context) {
	prov, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if prov == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}
	c.JSON(http.StatusOK, prov)
}

// Login authenticates a staff member and issues an access token carrying
// their role.
func (h *ProviderHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	prov, err := h.Repo.GetByEmail(input.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if prov == nil || bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(prov.ID, prov.Role, utils.AccessTokenTTL)
	if err != nil {
		respondError(c, err)
		return
	}
	prov.TokenHash = utils.HashToken(token)
	if err := h.Repo.Update(prov); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"provider": prov, "accessToken": token})
}

// Logout revokes the staff session.
func (h *ProviderHandler) Logout(c *gin.Context) {
	prov, err := h.Repo.GetByID(c.GetString("providerID"))
	if err != nil || prov == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
		return
	}
	prov.TokenHash = ""
	if err := h.Repo.Update(prov); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
