// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a product id has no matching record
var ErrNotFound = errors.New("product not found")

// Service handles catalog reads
type Service struct {
	db *gorm.DB
}

// NewService creates a new product service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListRequest carries optional catalog filters
type ListRequest struct {
	Search     string
	CategoryID uint
	PriceSort  string // "asc" or "desc"; empty for insertion order
}

// List retrieves active products with optional name search, category filter
// and price sorting
func (s *Service) List(ctx context.Context, req *ListRequest) ([]Product, error) {
	query := s.db.WithContext(ctx).Model(&Product{}).
		Preload("Category").
		Where("is_active = ?", true)

	if req.Search != "" {
		query = query.Where("name ILIKE ?", "%"+req.Search+"%")
	}

	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}

	switch req.PriceSort {
	case "asc":
		query = query.Order("price ASC")
	case "desc":
		query = query.Order("price DESC")
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product
func (s *Service) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	result := s.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &p, nil
}

// ListCategories retrieves all categories
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
