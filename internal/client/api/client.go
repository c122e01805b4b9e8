// internal/client/api/client.go

// Package api is the REST client the storefront UI uses to reach the backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/your-org/storefront/internal/domain/order"
)

// PromoResult is the response of POST /apply-promo
type PromoResult struct {
	NewTotal        int64   `json:"newTotal"`
	DiscountApplied float64 `json:"discountApplied"`
}

// Error is a non-2xx API response with the server's message
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// Client talks JSON over HTTP to the storefront API
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
}

// NewClient creates an API client for the given base URL, e.g.
// "http://localhost:8080/api/v1". token may be empty for anonymous calls.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:     baseURL,
		bearerToken: token,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ApplyPromo redeems a promo code against a subtotal
func (c *Client) ApplyPromo(ctx context.Context, code string, subtotal int64) (*PromoResult, error) {
	body := map[string]interface{}{
		"promoCode":   code,
		"totalAmount": subtotal,
	}

	var result PromoResult
	if err := c.do(ctx, http.MethodPost, "/apply-promo", body, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateOrder submits an order and returns the new order id
func (c *Client) CreateOrder(ctx context.Context, sub *order.Submission) (string, error) {
	var result struct {
		OrderID string `json:"orderId"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", sub, http.StatusCreated, &result); err != nil {
		return "", err
	}
	return result.OrderID, nil
}

// GetOrder fetches a single order by id
func (c *Client) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, http.StatusOK, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders fetches orders for a user id and/or email, most recent first
func (c *Client) ListOrders(ctx context.Context, userID, email string) ([]order.Order, error) {
	path := fmt.Sprintf("/orders?userId=%s&email=%s", url.QueryEscape(userID), url.QueryEscape(email))

	var orders []order.Order
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &Error{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
