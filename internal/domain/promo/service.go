// internal/domain/promo/service.go
package promo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrInvalidCode is returned when a code is empty, unknown or inactive
var ErrInvalidCode = errors.New("invalid or expired promo code")

// ErrInvalidAmount is returned when the subtotal is not positive
var ErrInvalidAmount = errors.New("invalid total amount")

const cacheTTL = 5 * time.Minute

// Application is the result of applying a promo code to a subtotal.
// Amounts are in minor currency units.
type Application struct {
	NewTotal           int64   `json:"newTotal"`
	DiscountPercentage float64 `json:"discountApplied"`
}

// Service applies promo codes. It is a stateless computation over a registry
// read; lookups are cached in Redis when a client is provided.
type Service struct {
	registry    Registry
	redisClient *redis.Client
}

// NewService creates a new promo service. redisClient may be nil to disable
// lookup caching.
func NewService(registry Registry, redisClient *redis.Client) *Service {
	return &Service{
		registry:    registry,
		redisClient: redisClient,
	}
}

// Apply validates code against the registry and computes the discounted
// total: discount = subtotal * percentage / 100, floored at zero. The
// discount is always computed from the passed subtotal, never accumulated.
func (s *Service) Apply(ctx context.Context, code string, subtotal int64) (*Application, error) {
	if subtotal <= 0 {
		return nil, ErrInvalidAmount
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidCode
	}

	promo, err := s.lookup(ctx, code)
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("promo lookup failed: %w", err)
	}

	discount := int64(float64(subtotal) * promo.DiscountPercentage / 100)
	newTotal := subtotal - discount
	if newTotal < 0 {
		newTotal = 0
	}

	return &Application{
		NewTotal:           newTotal,
		DiscountPercentage: promo.DiscountPercentage,
	}, nil
}

func (s *Service) lookup(ctx context.Context, code string) (*PromoCode, error) {
	if s.redisClient != nil {
		if cached := s.getCached(ctx, code); cached != nil {
			return cached, nil
		}
	}

	promo, err := s.registry.FindActive(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		s.setCached(ctx, promo)
	}

	return promo, nil
}

func (s *Service) getCached(ctx context.Context, code string) *PromoCode {
	data, err := s.redisClient.Get(ctx, cacheKey(code)).Result()
	if err != nil {
		return nil
	}

	var promo PromoCode
	if err := json.Unmarshal([]byte(data), &promo); err != nil {
		return nil
	}
	return &promo
}

func (s *Service) setCached(ctx context.Context, promo *PromoCode) {
	data, err := json.Marshal(promo)
	if err != nil {
		return
	}
	// Best effort; a cache miss just falls back to the registry.
	s.redisClient.Set(ctx, cacheKey(promo.Code), data, cacheTTL)
}

func cacheKey(code string) string {
	return fmt.Sprintf("promo:code:%s", code)
}
