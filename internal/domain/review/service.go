// internal/domain/review/service.go
package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidReview is returned when required review fields are missing or
// the rating is out of range
var ErrInvalidReview = errors.New("rating (1-5) and comment are required")

// Service handles review creation and listing
type Service struct {
	db *gorm.DB
}

// NewService creates a new review service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateRequest carries a new review
type CreateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create stores a review for a product
func (s *Service) Create(ctx context.Context, productID, userID, userName string, req *CreateRequest) (*Review, error) {
	if strings.TrimSpace(productID) == "" ||
		strings.TrimSpace(req.Comment) == "" ||
		req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidReview
	}

	r := Review{
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &r, nil
}

// ListByProduct retrieves reviews for a product. sortBy is restricted to
// known columns; sortOrder defaults to descending.
func (s *Service) ListByProduct(ctx context.Context, productID, sortBy, sortOrder string) ([]Review, error) {
	validSortFields := map[string]bool{
		"created_at": true,
		"rating":     true,
	}
	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var reviews []Review
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
