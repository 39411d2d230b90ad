package handlers

import (
	"net/http"

	assistSvc "servana/services/assist"

	"github.com/gin-gonic/gin"
)

// AssistHandler answers support messages.
type AssistHandler struct {
	Svc *assistSvc.Service
}

// Respond classifies the message and returns the assistant's reply.
func (h *AssistHandler) Respond(c *gin.Context) {
	var input struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	c.JSON(http.StatusOK, h.Svc.Respond(c.Request.Context(), input.Message))
}
