// internal/interfaces/http/handlers/email.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/pkg/email"
)

// EmailHandler exposes the stubbed email sender
type EmailHandler struct {
	service *email.Service
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(service *email.Service) *EmailHandler {
	return &EmailHandler{service: service}
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Send handles POST /send-email. Messages are logged, not delivered.
func (h *EmailHandler) Send(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.To) == "" || strings.TrimSpace(req.Subject) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "to and subject are required",
		})
		return
	}

	if err := h.service.Send(req.To, req.Subject, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to queue email",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email sent (not really, just a placeholder)",
	})
}
