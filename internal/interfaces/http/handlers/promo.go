// internal/interfaces/http/handlers/promo.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/promo"
)

// PromoHandler handles promo code application requests
type PromoHandler struct {
	service *promo.Service
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(service *promo.Service) *PromoHandler {
	return &PromoHandler{service: service}
}

type applyPromoRequest struct {
	PromoCode   string `json:"promoCode"`
	TotalAmount int64  `json:"totalAmount"`
}

// Apply handles POST /apply-promo
func (h *PromoHandler) Apply(c *gin.Context) {
	var req applyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	app, err := h.service.Apply(c.Request.Context(), req.PromoCode, req.TotalAmount)
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid total amount",
			})
		case errors.Is(err, promo.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid or expired promo code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to apply promo code",
			})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}
