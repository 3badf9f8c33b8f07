package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gia/config"
	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/repository"
	"gia/internal/domain/service"
	"gia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	payments    service.PaymentService
	keyID       string
	logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	payments service.PaymentService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		payments:    payments,
		keyID:       cfg.Razorpay.KeyID,
		logger:      logger,
	}
}

// CreateOrder requests the gateway intent first and persists the order
// second. The ordering is deliberate: a gateway failure leaves no local
// state, while a persistence failure after the intent exists orphans the
// intent at the gateway. The two systems share no transaction, so the
// orphan risk is accepted rather than papered over.
func (srv *orderService) CreateOrder(ctx context.Context, caller *entity.User, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	receipt := "order_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	intent, err := srv.payments.CreatePaymentOrder(ctx, input.Total, receipt, map[string]any{
		"userId": caller.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	now := time.Now()
	order := &entity.Order{
		UserID:          caller.ID,
		Items:           input.Items,
		Total:           input.Total,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
		PaymentID:       intent.ID,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := srv.orderRepo.Create(ctx, order)
	if err != nil {
		srv.logger.Error("order persistence failed after intent creation, intent orphaned",
			"intentID", intent.ID, "userID", caller.ID, "error", err)

		return nil, errors.Wrap(err, "failed to persist order")
	}
	order.ID = id

	srv.logger.Info("order created", "orderID", id, "intentID", intent.ID, "total", input.Total)

	return &usecase.CreateOrderOutput{
		Order:           order,
		RazorpayOrderID: intent.ID,
		RazorpayKeyID:   srv.keyID,
	}, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ConfirmPayment applies the single state transition of the order lifecycle.
func (srv *orderService) ConfirmPayment(ctx context.Context, orderID string, input *usecase.ConfirmPaymentInput) error {
	if err := srv.payments.VerifyPaymentSignature(
		input.RazorpayOrderID,
		input.RazorpayPaymentID,
		input.RazorpaySignature,
	); err != nil {
		return errors.Wrap(err, "payment verification failed")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("order not found")
		}

		return errors.Wrap(err, "failed to find order")
	}

	// Guard against replay: a confirmation may only move a pending order.
	if order.Status != entity.OrderStatusPending {
		return domainerrors.ErrConflict.WrapMessage("order is already confirmed")
	}

	if err := srv.orderRepo.Update(ctx, orderID, map[string]any{
		"status":        entity.OrderStatusConfirmed,
		"paymentStatus": entity.PaymentStatusCompleted,
		"updatedAt":     time.Now(),
	}); err != nil {
		return errors.Wrap(err, "failed to confirm order")
	}

	srv.logger.Info("payment confirmed", "orderID", orderID, "paymentID", input.RazorpayPaymentID)

	return nil
}

// ArtistOrders joins orders against the artist's product set in memory.
// Cost is O(orders x line items); acceptable while both collections are
// fetched wholesale anyway.
func (srv *orderService) ArtistOrders(ctx context.Context, artistID string) ([]entity.Order, error) {
	products, err := srv.productRepo.FindByArtist(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist products")
	}

	productIDs := make(map[string]struct{}, len(products))
	for _, product := range products {
		productIDs[product.ID] = struct{}{}
	}

	orders, err := srv.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	matched := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.ContainsProduct(productIDs) {
			matched = append(matched, order)
		}
	}

	return matched, nil
}

func (srv *orderService) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}
