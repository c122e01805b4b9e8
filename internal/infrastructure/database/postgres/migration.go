// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/promo"
	"github.com/your-org/storefront/internal/domain/review"
	"gorm.io/gorm"
)

// Migration handles database schema management
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration handler
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations runs gorm auto-migrations for all entities
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database migrations...")

	err := m.db.AutoMigrate(
		&product.Category{},
		&product.Product{},
		&promo.PromoCode{},
		&order.Order{},
		&order.Item{},
		&review.Review{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// SeedInitialData seeds development data: categories, a few products and the
// starter promo codes.
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategoriesAndProducts(); err != nil {
		return err
	}
	if err := m.seedPromoCodes(); err != nil {
		return err
	}

	log.Println("✅ Data seeding completed")
	return nil
}

func (m *Migration) seedCategoriesAndProducts() error {
	var count int64
	m.db.Model(&product.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []product.Category{
		{Name: "Apparel"},
		{Name: "Accessories"},
		{Name: "Home"},
	}
	if err := m.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	products := []product.Product{
		{
			Name:        "Classic Tee",
			Description: "Soft cotton crew-neck shirt",
			Price:       49900, // ₱499.00
			Image:       "/images/classic-tee.jpg",
			CategoryID:  &categories[0].ID,
			IsActive:    true,
		},
		{
			Name:        "Canvas Tote",
			Description: "Everyday carry-all tote bag",
			Price:       35000,
			Image:       "/images/canvas-tote.jpg",
			CategoryID:  &categories[1].ID,
			IsActive:    true,
		},
		{
			Name:        "Ceramic Mug",
			Description: "Hand-glazed 350ml mug",
			Price:       25000,
			Image:       "/images/ceramic-mug.jpg",
			CategoryID:  &categories[2].ID,
			IsActive:    true,
		},
	}
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	return nil
}

func (m *Migration) seedPromoCodes() error {
	var count int64
	m.db.Model(&promo.PromoCode{}).Count(&count)
	if count > 0 {
		return nil
	}

	codes := []promo.PromoCode{
		{Code: "SAVE10", DiscountPercentage: 10, IsActive: true},
		{Code: "SAVE20", DiscountPercentage: 20, IsActive: true},
		{Code: "WELCOME15", DiscountPercentage: 15, IsActive: true},
		{Code: "EXPIRED50", DiscountPercentage: 50, IsActive: false},
	}
	if err := m.db.Create(&codes).Error; err != nil {
		return fmt.Errorf("failed to seed promo codes: %w", err)
	}

	return nil
}
