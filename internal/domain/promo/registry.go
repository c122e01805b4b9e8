// internal/domain/promo/registry.go
package promo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrCodeNotFound is returned by a Registry when no active promo matches
var ErrCodeNotFound = errors.New("promo code not found")

// Registry looks up active promo codes by exact code match
type Registry interface {
	FindActive(ctx context.Context, code string) (*PromoCode, error)
}

type gormRegistry struct {
	db *gorm.DB
}

// NewRegistry creates a gorm-backed promo code registry
func NewRegistry(db *gorm.DB) Registry {
	return &gormRegistry{db: db}
}

func (r *gormRegistry) FindActive(ctx context.Context, code string) (*PromoCode, error) {
	var promo PromoCode
	result := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&promo)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, result.Error
	}
	return &promo, nil
}
