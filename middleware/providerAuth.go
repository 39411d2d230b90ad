package middleware

import (
	"net/http"
	"strings"

	providerRepo "servana/database/repository/provider"
	"servana/models"
	"servana/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthProviderMiddleware authenticates staff requests by token hash
// lookup and sets providerID, providerRole and businessID in context.
func JWTAuthProviderMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		providerID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || providerID == "" || !models.ValidProviderRole(role) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		prov, err := repo.GetByTokenHash(utils.HashToken(tokenString))
		if err != nil || prov == nil || prov.ID != providerID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set("providerID", prov.ID)
		c.Set("providerRole", prov.Role)
		c.Set("businessID", prov.BusinessID)
		c.Next()
	}
}

// RequireRole gates a staff route to the listed roles. Runs after
// JWTAuthProviderMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("providerRole")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}
