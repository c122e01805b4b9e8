// internal/domain/promo/entity.go
package promo

import (
	"time"
)

// PromoCode represents a redeemable discount code. DiscountPercentage is in
// [0,100]; inactive codes are never matched.
type PromoCode struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Code               string    `gorm:"uniqueIndex;not null;size:50" json:"code"`
	DiscountPercentage float64   `gorm:"not null" json:"discountPercentage"`
	IsActive           bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (PromoCode) TableName() string {
	return "promo_codes"
}
