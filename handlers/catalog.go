package handlers

import (
	"net/http"

	catalogSvc "servana/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public service catalog.
type CatalogHandler struct {
	Svc catalogSvc.Service
}

// Featured returns the homepage featured services.
func (h *CatalogHandler) Featured(c *gin.Context) {
	services, err := h.Svc.FeaturedServices()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// Popular returns the popular services grid.
func (h *CatalogHandler) Popular(c *gin.Context) {
	services, err := h.Svc.PopularServices()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ByCategory lists services in one category.
func (h *CatalogHandler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	services, err := h.Svc.ServicesByCategory(category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// Get returns one catalog service.
func (h *CatalogHandler) Get(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
