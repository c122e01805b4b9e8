package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/promo"
)

type fakePromoRegistry struct {
	codes map[string]promo.PromoCode
}

func (f *fakePromoRegistry) FindActive(ctx context.Context, code string) (*promo.PromoCode, error) {
	p, ok := f.codes[code]
	if !ok || !p.IsActive {
		return nil, promo.ErrCodeNotFound
	}
	return &p, nil
}

func newPromoRouter() *gin.Engine {
	registry := &fakePromoRegistry{codes: map[string]promo.PromoCode{
		"SAVE10":    {Code: "SAVE10", DiscountPercentage: 10, IsActive: true},
		"EXPIRED50": {Code: "EXPIRED50", DiscountPercentage: 50, IsActive: false},
	}}
	handler := NewPromoHandler(promo.NewService(registry, nil))

	r := gin.New()
	r.POST("/apply-promo", handler.Apply)
	return r
}

func TestApplyPromoSuccess(t *testing.T) {
	router := newPromoRouter()

	w := postJSON(router, "/apply-promo", map[string]interface{}{
		"promoCode":   "SAVE10",
		"totalAmount": 100000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		NewTotal        int64   `json:"newTotal"`
		DiscountApplied float64 `json:"discountApplied"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(90000), resp.NewTotal)
	assert.Equal(t, float64(10), resp.DiscountApplied)
}

func TestApplyPromoInvalidAmount(t *testing.T) {
	router := newPromoRouter()

	w := postJSON(router, "/apply-promo", map[string]interface{}{
		"promoCode":   "SAVE10",
		"totalAmount": 0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid total amount", resp.Message)
}

func TestApplyPromoUnknownCode(t *testing.T) {
	router := newPromoRouter()

	for _, code := range []string{"NOPE", "EXPIRED50", ""} {
		w := postJSON(router, "/apply-promo", map[string]interface{}{
			"promoCode":   code,
			"totalAmount": 100000,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid or expired promo code", resp.Message)
	}
}
