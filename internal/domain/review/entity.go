// internal/domain/review/entity.go
package review

import (
	"time"
)

// Review is a product review left by a signed-in customer. UserName is
// resolved from the identity token at creation time.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID string    `gorm:"not null;index;size:255" json:"productId"`
	UserID    string    `gorm:"not null;index;size:255" json:"userId"`
	UserName  string    `gorm:"size:255" json:"userName"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (Review) TableName() string {
	return "reviews"
}
