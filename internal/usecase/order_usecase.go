package usecase

import (
	"context"

	"gia/internal/domain/entity"
)

// OrderUsecase defines the order-payment lifecycle. The only state
// transition is pending -> confirmed, made exactly once on a verified
// payment confirmation.
type OrderUsecase interface {
	// CreateOrder requests a payment intent from the gateway and persists a
	// pending order carrying the intent ID. If the gateway call fails no
	// order record is written; if persistence fails after the intent was
	// created the intent is orphaned at the gateway (accepted limitation,
	// the two systems share no transaction).
	CreateOrder(ctx context.Context, caller *entity.User, input *CreateOrderInput) (*CreateOrderOutput, error)

	// ListOrders returns the caller's own orders.
	ListOrders(ctx context.Context, userID string) ([]entity.Order, error)

	// ConfirmPayment verifies the gateway signature and transitions the order
	// to confirmed/completed. Any verification failure aborts with no state
	// change. Only pending orders transition; re-confirming an already
	// confirmed order fails with a conflict.
	ConfirmPayment(ctx context.Context, orderID string, input *ConfirmPaymentInput) error

	// ArtistOrders returns orders containing at least one of the artist's
	// products. This is an in-memory intersection join over line items.
	ArtistOrders(ctx context.Context, artistID string) ([]entity.Order, error)

	// ListAllOrders returns every order, for the superuser dashboard.
	ListAllOrders(ctx context.Context) ([]entity.Order, error)
}

// CreateOrderInput defines the checkout payload.
type CreateOrderInput struct {
	Items           []entity.OrderItem `json:"items" validate:"required,min=1,dive"`
	Total           float64            `json:"total" validate:"required,gt=0"`
	ShippingAddress entity.Address     `json:"shippingAddress" validate:"required"`
}

// CreateOrderOutput is returned from checkout. RazorpayOrderID is the
// gateway's public intent identifier the client needs to complete payment,
// and RazorpayKeyID is the public half of the gateway key pair.
type CreateOrderOutput struct {
	Order           *entity.Order `json:"order"`
	RazorpayOrderID string        `json:"razorpayOrderId"`
	RazorpayKeyID   string        `json:"razorpayKeyId"`
}

// ConfirmPaymentInput carries the gateway's signed payment confirmation.
type ConfirmPaymentInput struct {
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
}
