// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/promo"
	"github.com/your-org/storefront/internal/domain/review"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/email"
	"gorm.io/gorm"
)

// SetupRoutes wires all API v1 routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	jwtManager := auth.NewJWTManager(cfg)
	emailService := email.NewService(cfg, logger)

	orderService := order.NewService(order.NewRepository(db), logger)
	promoService := promo.NewService(promo.NewRegistry(db), redisClient)
	productService := product.NewService(db)
	reviewService := review.NewService(db)

	orderHandler := handlers.NewOrderHandler(orderService, emailService, logger)
	promoHandler := handlers.NewPromoHandler(promoService)
	productHandler := handlers.NewProductHandler(productService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	emailHandler := handlers.NewEmailHandler(emailService)

	// Checkout endpoints. Auth is optional: guests can place orders, signed-in
	// users get their id attached by the storefront client.
	checkout := rg.Group("")
	checkout.Use(middleware.OptionalAuthMiddleware(jwtManager))
	{
		checkout.POST("/orders", orderHandler.Create)
		checkout.GET("/orders", orderHandler.List)
		checkout.GET("/orders/:id", orderHandler.Get)
		checkout.POST("/apply-promo", promoHandler.Apply)
	}

	// Stub email endpoint kept for the storefront client
	rg.POST("/send-email", emailHandler.Send)

	// Catalog endpoints
	products := rg.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
	}
	rg.GET("/categories", productHandler.ListCategories)

	// Review endpoints. Reading is public, writing requires a valid token.
	reviews := rg.Group("/reviews")
	{
		reviews.GET("/:productId", reviewHandler.List)

		protected := reviews.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager))
		{
			protected.POST("/:productId", reviewHandler.Create)
		}
	}
}
