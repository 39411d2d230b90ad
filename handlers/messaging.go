package handlers

import (
	"net/http"

	messagingSvc "servana/services/messaging"

	"github.com/gin-gonic/gin"
)

// MessagingHandler bridges booking chat onto Twilio Conversations through a
// single action-discriminated endpoint.
type MessagingHandler struct {
	Svc messagingSvc.Service
}

// Handle dispatches on the request's action field. Failures come back as
// {success:false, error} with a 502, since the upstream is a third party.
func (h *MessagingHandler) Handle(c *gin.Context) {
	var req struct {
		Action         string `json:"action"`
		ConversationID string `json:"conversationId,omitempty"`
		FriendlyName   string `json:"friendlyName,omitempty"`
		CustomerID     string `json:"customerId,omitempty"`
		ProviderID     string `json:"providerId,omitempty"`
		Body           string `json:"body,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input"})
		return
	}

	// Identity is role-prefixed; a providerID marks the sender as staff.
	identity := ""
	if req.ProviderID != "" {
		identity = messagingSvc.Identity("provider", req.ProviderID)
	} else if req.CustomerID != "" {
		identity = messagingSvc.Identity("customer", req.CustomerID)
	}

	switch req.Action {
	case messagingSvc.ActionCreateConversation:
		sid, err := h.Svc.CreateConversation(req.FriendlyName, identity)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "conversationId": sid})

	case messagingSvc.ActionSendMessage:
		if req.ConversationID == "" || req.Body == "" || identity == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "conversationId, body and a sender are required"})
			return
		}
		msg, err := h.Svc.SendMessage(req.ConversationID, identity, req.Body)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})

	case messagingSvc.ActionGetMessages:
		if req.ConversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "conversationId is required"})
			return
		}
		messages, err := h.Svc.GetMessages(req.ConversationID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})

	case messagingSvc.ActionGetParticipants:
		if req.ConversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "conversationId is required"})
			return
		}
		participants, err := h.Svc.GetParticipants(req.ConversationID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "participants": participants})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": messagingSvc.ErrUnknownAction.Error()})
	}
}
