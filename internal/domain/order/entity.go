// internal/domain/order/entity.go
package order

import (
	"time"
)

// Status represents the fulfillment status of an order. Transitions past
// Processing are performed by external fulfillment tooling, not this service.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusConfirmed  Status = "Confirmed"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// DeliveryMethod determines whether a shipping address is required.
type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

// PaymentMethod selects which payment detail block must be populated.
type PaymentMethod string

const (
	PaymentCOD        PaymentMethod = "cod"
	PaymentGcash      PaymentMethod = "gcash"
	PaymentCreditCard PaymentMethod = "credit_card"
)

// Order is a self-contained record: the order row and its items are written
// together in a single create. All amounts are in minor currency units.
type Order struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	UserID        string        `gorm:"not null;index;size:255" json:"userId"`
	UserEmail     string        `gorm:"not null;index;size:255" json:"userEmail"`
	TotalAmount   int64         `gorm:"not null" json:"totalAmount"`
	Status        Status        `gorm:"not null;default:'Processing';size:20" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:'Pending';size:20" json:"paymentStatus"`

	DeliveryMethod DeliveryMethod `gorm:"not null;size:20" json:"deliveryMethod"`
	PaymentMethod  PaymentMethod  `gorm:"not null;size:20" json:"paymentMethod"`

	// Conditional blocks: ShippingAddress is set iff DeliveryMethod is
	// delivery; exactly one of Gcash/CreditCard is set for non-cod payments.
	ShippingAddress *ShippingAddress   `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress,omitempty"`
	Gcash           *GcashDetails      `gorm:"embedded;embeddedPrefix:gcash_" json:"gcash,omitempty"`
	CreditCard      *CreditCardDetails `gorm:"embedded;embeddedPrefix:card_" json:"creditCard,omitempty"`

	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item represents one purchased line of an order
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	OrderID   string    `gorm:"not null;index;size:36" json:"-"`
	ProductID string    `gorm:"not null;size:255" json:"productId"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     int64     `gorm:"not null" json:"price"` // Price per unit at order time
	CreatedAt time.Time `json:"-"`
}

// ShippingAddress is collected when the delivery method is delivery
type ShippingAddress struct {
	FullName     string `gorm:"size:255" json:"fullName"`
	AddressLine1 string `gorm:"size:255" json:"addressLine1"`
	AddressLine2 string `gorm:"size:255" json:"addressLine2,omitempty"`
	City         string `gorm:"size:100" json:"city"`
	Province     string `gorm:"size:100" json:"province"`
	PostalCode   string `gorm:"size:20" json:"postalCode"`
	PhoneNumber  string `gorm:"size:20" json:"phoneNumber"`
}

// GcashDetails is collected when the payment method is gcash
type GcashDetails struct {
	Number string `gorm:"size:20" json:"number"`
	PIN    string `gorm:"size:10" json:"pin"`
}

// CreditCardDetails is collected when the payment method is credit_card
type CreditCardDetails struct {
	Number string `gorm:"size:30" json:"number"`
	Expiry string `gorm:"size:10" json:"expiry"`
	CVV    string `gorm:"size:10" json:"cvv"`
	Name   string `gorm:"size:255" json:"name"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }
