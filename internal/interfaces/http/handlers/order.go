// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/pkg/email"
)

// OrderHandler handles order placement and lookup requests
type OrderHandler struct {
	service *order.Service
	email   *email.Service
	logger  *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *order.Service, emailService *email.Service, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		email:   emailService,
		logger:  logger,
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var sub order.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	o, err := h.service.Create(c.Request.Context(), &sub)
	if err != nil {
		if verr, ok := order.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": verr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to place order",
		})
		return
	}

	// Confirmation is best effort and must not delay the response
	go func(to, orderID string) {
		if err := h.email.SendOrderConfirmation(to, orderID); err != nil {
			h.logger.WithField("order_id", orderID).Warn("Failed to send order confirmation")
		}
	}(o.UserEmail, o.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"orderId": o.ID,
	})
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, o)
}

// List handles GET /orders?userId=&email=
func (h *OrderHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	userEmail := c.Query("email")

	orders, err := h.service.ListByUserOrEmail(c.Request.Context(), userID, userEmail)
	if err != nil {
		if errors.Is(err, order.ErrMissingQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}
