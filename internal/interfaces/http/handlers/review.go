// internal/interfaces/http/handlers/review.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/review"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// ReviewHandler handles product review requests
type ReviewHandler struct {
	service *review.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *review.Service) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /reviews/:productId (authenticated)
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Authentication required",
		})
		return
	}
	userName, _ := middleware.GetUserNameFromContext(c)

	var req review.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	r, err := h.service.Create(c.Request.Context(), c.Param("productId"), userID, userName, &req)
	if err != nil {
		if errors.Is(err, review.ErrInvalidReview) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create review",
		})
		return
	}

	c.JSON(http.StatusCreated, r)
}

// List handles GET /reviews/:productId?sortBy=&order=
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.service.ListByProduct(
		c.Request.Context(),
		c.Param("productId"),
		c.Query("sortBy"),
		c.Query("order"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to list reviews",
		})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
