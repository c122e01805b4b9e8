// internal/domain/order/repository.go
package order

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository persists orders. Each order is a self-contained record; Create
// writes the order and its items together.
//
// FindByUserOrEmail matches either field: when both userID and email are
// given, an order belongs to the result if its user id OR its email matches.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByUserOrEmail(ctx context.Context, userID, email string) ([]Order, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed order repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	result := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&o)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &o, nil
}

func (r *gormRepository) FindByUserOrEmail(ctx context.Context, userID, email string) ([]Order, error) {
	query := r.db.WithContext(ctx).Model(&Order{}).Preload("Items")
	if cond, args := userOrEmailClause(userID, email); cond != "" {
		query = query.Where(cond, args...)
	}

	var orders []Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// userOrEmailClause builds the history filter. Both fields given means OR:
// the client sends the current id and email together, and an order placed
// under an older email must still show up by user id (and vice versa).
func userOrEmailClause(userID, email string) (string, []interface{}) {
	switch {
	case userID != "" && email != "":
		return "user_id = ? OR user_email = ?", []interface{}{userID, email}
	case userID != "":
		return "user_id = ?", []interface{}{userID}
	case email != "":
		return "user_email = ?", []interface{}{email}
	}
	return "", nil
}
