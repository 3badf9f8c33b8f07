package entity

import "time"

// OrderStatus is the fulfilment state of an order. The only transition in
// this system is pending -> confirmed; there is no cancellation state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// OrderItem is one line of an order, a snapshot of the product at checkout.
type OrderItem struct {
	ProductID string  `firestore:"productId" json:"productId" validate:"required"`
	Title     string  `firestore:"title" json:"title" validate:"required"`
	Quantity  int     `firestore:"quantity" json:"quantity" validate:"required,gt=0"`
	Price     float64 `firestore:"price" json:"price" validate:"required,gt=0"`
}

// Address is a shipping address captured at checkout.
type Address struct {
	FullName     string `firestore:"fullName" json:"fullName" validate:"required"`
	Phone        string `firestore:"phone" json:"phone" validate:"required"`
	Email        string `firestore:"email" json:"email" validate:"required,email"`
	AddressLine1 string `firestore:"addressLine1" json:"addressLine1" validate:"required"`
	AddressLine2 string `firestore:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `firestore:"city" json:"city" validate:"required"`
	State        string `firestore:"state" json:"state" validate:"required"`
	PostalCode   string `firestore:"postalCode" json:"postalCode" validate:"required"`
	Country      string `firestore:"country" json:"country" validate:"required"`
}

// Order is created exactly once at checkout. Total is stored in major
// currency units; the gateway's minor-unit conversion happens only at the
// payment adapter boundary. PaymentID is assigned from the gateway intent
// before the order document is ever written, so an order is never visible
// without it.
type Order struct {
	ID              string        `firestore:"-" json:"id"`
	UserID          string        `firestore:"userId" json:"userId"`
	Items           []OrderItem   `firestore:"items" json:"items"`
	Total           float64       `firestore:"total" json:"total"`
	Status          OrderStatus   `firestore:"status" json:"status"`
	PaymentStatus   PaymentStatus `firestore:"paymentStatus" json:"paymentStatus"`
	PaymentID       string        `firestore:"paymentId" json:"paymentId"`
	ShippingAddress Address       `firestore:"shippingAddress" json:"shippingAddress"`
	CreatedAt       time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

// ContainsProduct reports whether any line item references one of the given
// product IDs. An order counts fully toward an artist as soon as one line
// matches; there is no line-level attribution.
func (o *Order) ContainsProduct(productIDs map[string]struct{}) bool {
	for _, item := range o.Items {
		if _, ok := productIDs[item.ProductID]; ok {
			return true
		}
	}

	return false
}
