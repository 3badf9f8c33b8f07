package impl

import (
	"context"
	"testing"

	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/repository"
	"gia/internal/domain/service"
	mockRepo "gia/internal/mocks/repository"
	mockService "gia/internal/mocks/service"
	"gia/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	payments    *mockService.MockPaymentService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	payments := mockService.NewMockPaymentService(t)
	svc := NewOrderService(orderRepo, productRepo, payments, newTestConfig(), newDiscardLogger())

	return orderServiceFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		payments:    payments,
	}
}

func testCreateOrderInput() *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		Items: []entity.OrderItem{
			{ProductID: "prod-1", Title: "Madhubani Painting", Quantity: 1, Price: 2500},
		},
		Total: 2500,
		ShippingAddress: entity.Address{
			FullName:     "Asha Rao",
			Phone:        "9999999999",
			Email:        "asha@example.com",
			AddressLine1: "12 MG Road",
			City:         "Bengaluru",
			State:        "Karnataka",
			PostalCode:   "560001",
			Country:      "India",
		},
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "uid-1", Role: entity.RoleUser}
	input := testCreateOrderInput()

	fx.payments.EXPECT().
		CreatePaymentOrder(ctx, 2500.0, mock.AnythingOfType("string"), map[string]interface{}{"userId": "uid-1"}).
		Return(&service.PaymentIntent{ID: "pay_order_123", Amount: 250000, Currency: "INR"}, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
			assert.Equal(t, "pay_order_123", order.PaymentID)
		}).
		Return("order-1", nil)

	output, err := fx.service.CreateOrder(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, "order-1", output.Order.ID)
	assert.Equal(t, "pay_order_123", output.RazorpayOrderID)
	assert.Equal(t, "rzp_test_key", output.RazorpayKeyID)
}

func TestOrderService_CreateOrder_GatewayFailureWritesNothing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "uid-1", Role: entity.RoleUser}

	// No orderRepo expectation: a gateway failure must leave no local state.
	fx.payments.EXPECT().
		CreatePaymentOrder(ctx, 2500.0, mock.AnythingOfType("string"), mock.Anything).
		Return(nil, domainerrors.ErrUpstreamFailure.WrapMessage("gateway unavailable"))

	_, err := fx.service.CreateOrder(ctx, caller, testCreateOrderInput())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}

func TestOrderService_ConfirmPayment_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.ConfirmPaymentInput{
		RazorpayOrderID:   "pay_order_123",
		RazorpayPaymentID: "pay_abc",
		RazorpaySignature: "sig",
	}

	fx.payments.EXPECT().
		VerifyPaymentSignature("pay_order_123", "pay_abc", "sig").
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending}, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, "order-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, fields map[string]interface{}) {
			assert.Equal(t, entity.OrderStatusConfirmed, fields["status"])
			assert.Equal(t, entity.PaymentStatusCompleted, fields["paymentStatus"])
		}).
		Return(nil)

	err := fx.service.ConfirmPayment(ctx, "order-1", input)

	require.NoError(t, err)
}

func TestOrderService_ConfirmPayment_ReplayRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.ConfirmPaymentInput{
		RazorpayOrderID:   "pay_order_123",
		RazorpayPaymentID: "pay_abc",
		RazorpaySignature: "sig",
	}

	fx.payments.EXPECT().
		VerifyPaymentSignature("pay_order_123", "pay_abc", "sig").
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusConfirmed, PaymentStatus: entity.PaymentStatusCompleted}, nil)

	err := fx.service.ConfirmPayment(ctx, "order-1", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestOrderService_ConfirmPayment_BadSignature(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.ConfirmPaymentInput{
		RazorpayOrderID:   "pay_order_123",
		RazorpayPaymentID: "pay_abc",
		RazorpaySignature: "tampered",
	}

	// No order lookup expectation: verification failure aborts before any read.
	fx.payments.EXPECT().
		VerifyPaymentSignature("pay_order_123", "pay_abc", "tampered").
		Return(domainerrors.ErrValidationFailed.WrapMessage("invalid payment signature"))

	err := fx.service.ConfirmPayment(ctx, "order-1", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_ConfirmPayment_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.ConfirmPaymentInput{
		RazorpayOrderID:   "pay_order_123",
		RazorpayPaymentID: "pay_abc",
		RazorpaySignature: "sig",
	}

	fx.payments.EXPECT().
		VerifyPaymentSignature("pay_order_123", "pay_abc", "sig").
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrOrderNotFound)

	err := fx.service.ConfirmPayment(ctx, "missing", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_ArtistOrders_FiltersByProductSet(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByArtist(ctx, "artist-1").
		Return([]entity.Product{{ID: "prod-1"}, {ID: "prod-2"}}, nil)
	fx.orderRepo.EXPECT().
		List(ctx, 0, 0).
		Return([]entity.Order{
			{ID: "o1", Items: []entity.OrderItem{{ProductID: "prod-1"}}},
			{ID: "o2", Items: []entity.OrderItem{{ProductID: "prod-9"}}},
			{ID: "o3", Items: []entity.OrderItem{{ProductID: "prod-9"}, {ProductID: "prod-2"}}},
		}, nil)

	orders, err := fx.service.ArtistOrders(ctx, "artist-1")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "o3", orders[1].ID)
}

func TestOrderService_ListOrders_ReturnsOwnOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByUser(ctx, "uid-1").
		Return([]entity.Order{{ID: "o1", UserID: "uid-1"}}, nil)

	orders, err := fx.service.ListOrders(ctx, "uid-1")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}
