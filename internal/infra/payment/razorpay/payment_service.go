// Package razorpay implements the payment gateway adapter. This is the only
// place where monetary amounts are converted to the gateway's integer
// minor unit (paise); every other layer works in major currency units.
package razorpay

import (
	"context"
	"math"
	"time"

	"gia/config"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/service"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

const defaultCurrency = "INR"

type paymentService struct {
	client    *razorpay.Client
	keySecret string
}

// NewPaymentService creates the payment gateway adapter from the configured
// key pair. The vendor client carries its own request timeout; context is
// accepted on the interface for symmetry with the other adapters but the SDK
// does not support cancellation mid-flight.
func NewPaymentService(cfg *config.Config) service.PaymentService {
	client := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	if seconds := int64(cfg.External.CallTimeout / time.Second); seconds > 0 {
		client.SetTimeout(int16(seconds))
	}

	return &paymentService{
		client:    client,
		keySecret: cfg.Razorpay.KeySecret,
	}
}

// ToMinorUnit converts a major-unit amount to the gateway's integer paise.
func ToMinorUnit(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *paymentService) CreatePaymentOrder(_ context.Context, amount float64, receipt string, notes map[string]any) (*service.PaymentIntent, error) {
	if notes == nil {
		notes = map[string]any{}
	}

	data := map[string]any{
		"amount":   ToMinorUnit(amount),
		"currency": defaultCurrency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("failed to create payment order")
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("payment gateway returned no order id")
	}

	return &service.PaymentIntent{
		ID:       id,
		Amount:   ToMinorUnit(amount),
		Currency: defaultCurrency,
		Receipt:  receipt,
	}, nil
}

func (s *paymentService) VerifyPaymentSignature(orderID, paymentID, signature string) error {
	params := map[string]any{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}

	if !utils.VerifyPaymentSignature(params, signature, s.keySecret) {
		return domainerrors.ErrValidationFailed.WrapMessage("payment signature verification failed")
	}

	return nil
}

func (s *paymentService) Refund(_ context.Context, paymentID string, amount float64, notes map[string]any) error {
	data := map[string]any{}
	if notes != nil {
		data["notes"] = notes
	}

	if _, err := s.client.Payment.Refund(paymentID, int(ToMinorUnit(amount)), data, nil); err != nil {
		return domainerrors.ErrUpstreamFailure.WrapMessage("failed to refund payment")
	}

	return nil
}
