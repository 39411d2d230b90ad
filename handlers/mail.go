package handlers

import (
	"errors"
	"net/http"

	mailSvc "servana/services/mail"

	"github.com/gin-gonic/gin"
)

// MailHandler relays the contact form over SMTP.
type MailHandler struct {
	Sender mailSvc.Sender
}

// SendContactEmail relays {to, from, subject, html} as an HTML email.
func (h *MailHandler) SendContactEmail(c *gin.Context) {
	var msg mailSvc.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Sender.SendContactEmail(msg); err != nil {
		if errors.Is(err, mailSvc.ErrInvalidAddress) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
