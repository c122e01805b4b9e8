// internal/domain/order/validator.go
package order

import (
	"fmt"
	"regexp"
	"strings"
)

// Submission is the wire shape of an order before validation. It is built by
// the checkout client and bound from JSON by the orders handler; both run the
// same Validate so the rules cannot drift apart.
type Submission struct {
	UserID          string             `json:"userId"`
	UserEmail       string             `json:"userEmail"`
	Items           []SubmissionItem   `json:"items"`
	TotalAmount     int64              `json:"totalAmount"`
	DeliveryMethod  string             `json:"deliveryMethod"`
	PaymentMethod   string             `json:"paymentMethod"`
	ShippingAddress *ShippingAddress   `json:"shippingAddress,omitempty"`
	Gcash           *GcashDetails      `json:"gcash,omitempty"`
	CreditCard      *CreditCardDetails `json:"creditCard,omitempty"`
}

// SubmissionItem mirrors a cart line before sanitization
type SubmissionItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Matches local-part @ domain . tld, same pattern the checkout UI relies on.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validPaymentMethods = []PaymentMethod{PaymentCOD, PaymentGcash, PaymentCreditCard}
var validDeliveryMethods = []DeliveryMethod{DeliveryPickup, DeliveryDelivery}

// Validate checks a submission against the order rules, short-circuiting on
// the first failure. On success it returns a normalized Order ready for
// persistence: strings trimmed, invalid items dropped, and only the payment
// detail block matching the payment method populated.
func Validate(sub *Submission) (*Order, error) {
	if strings.TrimSpace(sub.UserID) == "" ||
		strings.TrimSpace(sub.UserEmail) == "" ||
		sub.Items == nil ||
		sub.TotalAmount <= 0 ||
		sub.PaymentMethod == "" ||
		sub.DeliveryMethod == "" {
		return nil, validationErr(CodeMissingFields, "Missing required fields")
	}

	email := strings.TrimSpace(sub.UserEmail)
	if !emailPattern.MatchString(email) {
		return nil, validationErr(CodeInvalidEmail, "Invalid email address")
	}

	if len(sub.Items) == 0 {
		return nil, validationErr(CodeInvalidItems, "Order must contain at least one item")
	}

	paymentMethod := PaymentMethod(sub.PaymentMethod)
	if !isValidPaymentMethod(paymentMethod) {
		return nil, validationErr(CodeInvalidPaymentMethod,
			fmt.Sprintf("Invalid payment method. Must be one of: %s", joinPaymentMethods()))
	}

	deliveryMethod := DeliveryMethod(sub.DeliveryMethod)
	if !isValidDeliveryMethod(deliveryMethod) {
		return nil, validationErr(CodeInvalidDeliveryMethod,
			fmt.Sprintf("Invalid delivery method. Must be one of: %s", joinDeliveryMethods()))
	}

	items := sanitizeItems(sub.Items)
	if len(items) == 0 {
		return nil, validationErr(CodeInvalidItems,
			"Invalid items format. Each item must include productId, name, quantity and price.")
	}

	var shippingAddress *ShippingAddress
	if deliveryMethod == DeliveryDelivery {
		addr, ok := normalizeShippingAddress(sub.ShippingAddress)
		if !ok {
			return nil, validationErr(CodeIncompleteShippingAddress,
				"Please complete all required shipping address fields")
		}
		shippingAddress = addr
	}

	var gcash *GcashDetails
	var creditCard *CreditCardDetails
	switch paymentMethod {
	case PaymentGcash:
		g, ok := normalizeGcash(sub.Gcash)
		if !ok {
			return nil, validationErr(CodeIncompletePaymentDetails,
				"GCash number and PIN are required")
		}
		gcash = g
	case PaymentCreditCard:
		cc, ok := normalizeCreditCard(sub.CreditCard)
		if !ok {
			return nil, validationErr(CodeIncompletePaymentDetails,
				"Complete all credit card fields")
		}
		creditCard = cc
	}

	return &Order{
		UserID:          strings.TrimSpace(sub.UserID),
		UserEmail:       email,
		TotalAmount:     sub.TotalAmount,
		DeliveryMethod:  deliveryMethod,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
		Gcash:           gcash,
		CreditCard:      creditCard,
		Items:           items,
	}, nil
}

// sanitizeItems trims item fields and drops entries that are not purchasable:
// empty product id or name, quantity below one, negative price.
func sanitizeItems(in []SubmissionItem) []Item {
	items := make([]Item, 0, len(in))
	for _, it := range in {
		productID := strings.TrimSpace(it.ProductID)
		name := strings.TrimSpace(it.Name)
		if productID == "" || name == "" || it.Quantity <= 0 || it.Price < 0 {
			continue
		}
		items = append(items, Item{
			ProductID: productID,
			Name:      name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return items
}

func normalizeShippingAddress(addr *ShippingAddress) (*ShippingAddress, bool) {
	if addr == nil {
		return nil, false
	}
	normalized := &ShippingAddress{
		FullName:     strings.TrimSpace(addr.FullName),
		AddressLine1: strings.TrimSpace(addr.AddressLine1),
		AddressLine2: strings.TrimSpace(addr.AddressLine2),
		City:         strings.TrimSpace(addr.City),
		Province:     strings.TrimSpace(addr.Province),
		PostalCode:   strings.TrimSpace(addr.PostalCode),
		PhoneNumber:  strings.TrimSpace(addr.PhoneNumber),
	}
	if normalized.FullName == "" ||
		normalized.AddressLine1 == "" ||
		normalized.City == "" ||
		normalized.Province == "" ||
		normalized.PostalCode == "" ||
		normalized.PhoneNumber == "" {
		return nil, false
	}
	return normalized, true
}

func normalizeGcash(g *GcashDetails) (*GcashDetails, bool) {
	if g == nil {
		return nil, false
	}
	normalized := &GcashDetails{
		Number: strings.TrimSpace(g.Number),
		PIN:    strings.TrimSpace(g.PIN),
	}
	if normalized.Number == "" || normalized.PIN == "" {
		return nil, false
	}
	return normalized, true
}

func normalizeCreditCard(cc *CreditCardDetails) (*CreditCardDetails, bool) {
	if cc == nil {
		return nil, false
	}
	normalized := &CreditCardDetails{
		Number: strings.TrimSpace(cc.Number),
		Expiry: strings.TrimSpace(cc.Expiry),
		CVV:    strings.TrimSpace(cc.CVV),
		Name:   strings.TrimSpace(cc.Name),
	}
	if normalized.Number == "" || normalized.Expiry == "" || normalized.CVV == "" || normalized.Name == "" {
		return nil, false
	}
	return normalized, true
}

func isValidPaymentMethod(m PaymentMethod) bool {
	for _, v := range validPaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

func isValidDeliveryMethod(m DeliveryMethod) bool {
	for _, v := range validDeliveryMethods {
		if v == m {
			return true
		}
	}
	return false
}

func joinPaymentMethods() string {
	parts := make([]string, len(validPaymentMethods))
	for i, v := range validPaymentMethods {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func joinDeliveryMethods() string {
	parts := make([]string, len(validDeliveryMethods))
	for i, v := range validDeliveryMethods {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
