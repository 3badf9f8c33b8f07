package service

import "context"

// PaymentIntent is the gateway-side order created before checkout. ID is the
// public identifier the client needs to complete payment out-of-band.
type PaymentIntent struct {
	ID       string
	Amount   int64 // minor units (paise)
	Currency string
	Receipt  string
}

// PaymentService is the port to the external payment gateway. Amounts cross
// this boundary in major currency units; the conversion to the gateway's
// integer minor unit happens inside the implementation and nowhere else.
type PaymentService interface {
	// CreatePaymentOrder creates a payment intent for the given amount,
	// tagged with an idempotent receipt identifier and caller metadata.
	CreatePaymentOrder(ctx context.Context, amount float64, receipt string, notes map[string]any) (*PaymentIntent, error)

	// VerifyPaymentSignature checks the gateway's signed payment confirmation
	// against the intent and payment identifiers. Fails with
	// ErrValidationFailed when the signature does not verify.
	VerifyPaymentSignature(orderID, paymentID, signature string) error

	// Refund refunds a captured payment, fully when amount is zero. No
	// endpoint routes here yet: refund states are an explicit open gap in the
	// order lifecycle.
	Refund(ctx context.Context, paymentID string, amount float64, notes map[string]any) error
}
