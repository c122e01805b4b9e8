// internal/client/checkout/session.go

// Package checkout drives a single checkout session on the client: it
// composes the cart, the promo side-path and payment/delivery field
// collection into one order submission, and reacts to the result.
package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/your-org/storefront/internal/client/api"
	"github.com/your-org/storefront/internal/client/cart"
	"github.com/your-org/storefront/internal/client/identity"
	"github.com/your-org/storefront/internal/domain/order"
)

// State is the checkout session state
type State string

const (
	StateEditing       State = "editing"
	StateApplyingPromo State = "applying_promo"
	StateSubmitting    State = "submitting"
	StateSuccess       State = "success"
)

var (
	// ErrBusy is returned while a promo or submit request is outstanding.
	// The UI disables the triggering control, but the session enforces the
	// single-flight rule itself.
	ErrBusy = errors.New("a checkout request is already in progress")

	// ErrNotSignedIn is returned when no identity is resolved
	ErrNotSignedIn = errors.New("please sign in to place an order")

	// ErrEmptyCart is returned when submitting with no cart items
	ErrEmptyCart = errors.New("your cart is empty")

	// ErrEmptyPromoCode is returned for a blank promo code
	ErrEmptyPromoCode = errors.New("please enter a discount code")
)

// API is the slice of the REST client the session needs
type API interface {
	ApplyPromo(ctx context.Context, code string, subtotal int64) (*api.PromoResult, error)
	CreateOrder(ctx context.Context, sub *order.Submission) (string, error)
}

// Session is a single checkout flow over the current cart. All amounts are
// in minor currency units. Methods are safe for the cooperative UI thread
// plus async request completions.
type Session struct {
	mu       sync.Mutex
	state    State
	cart     *cart.Store
	api      API
	identity identity.Provider

	deliveryFee    int64
	deliveryMethod order.DeliveryMethod
	paymentMethod  order.PaymentMethod

	shippingAddress order.ShippingAddress
	gcash           order.GcashDetails
	creditCard      order.CreditCardDetails

	discount    int64
	discountPct float64
	orderID     string
}

// NewSession starts a session in the editing state with pickup + cod
// defaults. deliveryFee is the flat fee charged when delivery is selected.
func NewSession(cartStore *cart.Store, apiClient API, provider identity.Provider, deliveryFee int64) *Session {
	return &Session{
		state:          StateEditing,
		cart:           cartStore,
		api:            apiClient,
		identity:       provider,
		deliveryFee:    deliveryFee,
		deliveryMethod: order.DeliveryPickup,
		paymentMethod:  order.PaymentCOD,
	}
}

// State returns the current session state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OrderID returns the created order id after a successful submission
func (s *Session) OrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderID
}

// SetDeliveryMethod selects pickup or delivery
func (s *Session) SetDeliveryMethod(m order.DeliveryMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrBusy
	}
	s.deliveryMethod = m
	return nil
}

// SetPaymentMethod selects the payment method
func (s *Session) SetPaymentMethod(m order.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrBusy
	}
	s.paymentMethod = m
	return nil
}

// SetShippingAddress fills the delivery address block
func (s *Session) SetShippingAddress(addr order.ShippingAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrBusy
	}
	s.shippingAddress = addr
	return nil
}

// SetGcashDetails fills the gcash payment block
func (s *Session) SetGcashDetails(g order.GcashDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrBusy
	}
	s.gcash = g
	return nil
}

// SetCreditCardDetails fills the credit card payment block
func (s *Session) SetCreditCardDetails(cc order.CreditCardDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrBusy
	}
	s.creditCard = cc
	return nil
}

// Subtotal is the cart total before discount and delivery fee
func (s *Session) Subtotal() int64 {
	return s.cart.Total()
}

// DeliveryFee is the flat fee for the selected delivery method
func (s *Session) DeliveryFee() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveryFeeLocked()
}

// Discount is the currently applied promo discount
func (s *Session) Discount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount
}

// Total is the amount the order will be placed for:
// subtotal - discount + delivery fee, never negative.
func (s *Session) Total() int64 {
	subtotal := s.cart.Total()

	s.mu.Lock()
	defer s.mu.Unlock()
	total := subtotal - s.discount + s.deliveryFeeLocked()
	if total < 0 {
		total = 0
	}
	return total
}

// ApplyPromo redeems a discount code against the current subtotal. The
// discount is recomputed from the subtotal on every call, never compounded.
// The cart's stored prices are untouched; only the session total changes.
func (s *Session) ApplyPromo(ctx context.Context, code string) error {
	if code == "" {
		return ErrEmptyPromoCode
	}

	s.mu.Lock()
	if s.state != StateEditing {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state = StateApplyingPromo
	s.mu.Unlock()

	subtotal := s.cart.Total()
	result, err := s.api.ApplyPromo(ctx, code, subtotal)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditing

	if err != nil {
		s.discount = 0
		s.discountPct = 0
		return err
	}

	discount := subtotal - result.NewTotal
	if discount < 0 {
		discount = 0
	}
	s.discount = discount
	s.discountPct = result.DiscountApplied
	return nil
}

// Submit places the order. It pre-checks the submission with the same
// validator the server runs, then posts it. On success the cart is cleared
// and the session ends in StateSuccess with the order id exposed; on failure
// the session returns to editing and the cart is left intact.
func (s *Session) Submit(ctx context.Context) (string, error) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return "", ErrNotSignedIn
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	total := s.Total()

	s.mu.Lock()
	if s.state != StateEditing {
		s.mu.Unlock()
		return "", ErrBusy
	}
	sub := s.buildSubmissionLocked(user, items, total)

	// Fast feedback before the network round trip; the server runs the
	// same rules authoritatively.
	if _, err := order.Validate(sub); err != nil {
		s.mu.Unlock()
		return "", err
	}

	s.state = StateSubmitting
	s.mu.Unlock()

	orderID, err := s.api.CreateOrder(ctx, sub)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateEditing
		return "", err
	}

	s.cart.Clear()
	s.state = StateSuccess
	s.orderID = orderID
	return orderID, nil
}

// buildSubmissionLocked assembles the wire submission from the cart and the
// collected fields. Only the detail blocks relevant to the selected methods
// are attached.
func (s *Session) buildSubmissionLocked(user *identity.User, items []cart.Item, total int64) *order.Submission {
	subItems := make([]order.SubmissionItem, 0, len(items))
	for _, item := range items {
		subItems = append(subItems, order.SubmissionItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	sub := &order.Submission{
		UserID:         user.ID,
		UserEmail:      user.Email,
		Items:          subItems,
		TotalAmount:    total,
		DeliveryMethod: string(s.deliveryMethod),
		PaymentMethod:  string(s.paymentMethod),
	}

	if s.deliveryMethod == order.DeliveryDelivery {
		addr := s.shippingAddress
		sub.ShippingAddress = &addr
	}

	switch s.paymentMethod {
	case order.PaymentGcash:
		g := s.gcash
		sub.Gcash = &g
	case order.PaymentCreditCard:
		cc := s.creditCard
		sub.CreditCard = &cc
	}

	return sub
}

// deliveryFeeLocked must be called with the lock held
func (s *Session) deliveryFeeLocked() int64 {
	if s.deliveryMethod == order.DeliveryDelivery {
		return s.deliveryFee
	}
	return 0
}
