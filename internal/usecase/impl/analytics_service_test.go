package impl

import (
	"context"
	"testing"

	"gia/internal/domain/entity"
	mockRepo "gia/internal/mocks/repository"
	"gia/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service     usecase.AnalyticsUsecase
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	svc := NewAnalyticsService(userRepo, productRepo, orderRepo, newDiscardLogger())

	return analyticsServiceFixtures{
		service:     svc,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func TestAnalyticsService_Overview_Totals(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, 0, 0).Return([]entity.User{{ID: "u1"}, {ID: "u2"}}, nil)
	fx.orderRepo.EXPECT().List(ctx, 0, 0).Return([]entity.Order{
		{ID: "o1", Total: 1000, PaymentStatus: entity.PaymentStatusCompleted},
		{ID: "o2", Total: 3000, PaymentStatus: entity.PaymentStatusCompleted},
		{ID: "o3", Total: 500, PaymentStatus: entity.PaymentStatusPending},
	}, nil)
	fx.productRepo.EXPECT().List(ctx, 0, 0).Return([]entity.Product{{ID: "p1"}}, nil)

	result, err := fx.service.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalUsers)
	assert.Equal(t, 3, result.TotalOrders)
	assert.Equal(t, 2, result.CompletedOrders)
	assert.Equal(t, 1, result.PendingOrders)
	assert.Equal(t, 1, result.TotalProducts)
	assert.InDelta(t, 4000.0, result.TotalRevenue, 0.001)
	assert.InDelta(t, 2000.0, result.AverageOrderValue, 0.001)
}

func TestAnalyticsService_Overview_NoCompletedOrdersAverageIsZero(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, 0, 0).Return(nil, nil)
	fx.orderRepo.EXPECT().List(ctx, 0, 0).Return([]entity.Order{
		{ID: "o1", Total: 500, PaymentStatus: entity.PaymentStatusPending},
	}, nil)
	fx.productRepo.EXPECT().List(ctx, 0, 0).Return(nil, nil)

	result, err := fx.service.Overview(ctx)

	require.NoError(t, err)
	assert.Zero(t, result.AverageOrderValue)
	assert.Zero(t, result.TotalRevenue)
}

func TestAnalyticsService_PaymentAnalytics_SuccessRate(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().List(ctx, 0, 0).Return([]entity.Order{
		{ID: "o1", Total: 1000, PaymentStatus: entity.PaymentStatusCompleted},
		{ID: "o2", Total: 2000, PaymentStatus: entity.PaymentStatusPending},
		{ID: "o3", Total: 3000, PaymentStatus: entity.PaymentStatusFailed},
		{ID: "o4", Total: 4000, PaymentStatus: entity.PaymentStatusCompleted},
	}, nil)

	result, err := fx.service.PaymentAnalytics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, result.CompletedPayments)
	assert.Equal(t, 1, result.PendingPayments)
	assert.Equal(t, 1, result.FailedPayments)
	assert.Equal(t, 4, result.TotalTransactions)
	assert.InDelta(t, 5000.0, result.CompletedRevenue, 0.001)
	assert.InDelta(t, 2000.0, result.PendingRevenue, 0.001)
	assert.InDelta(t, 50.0, result.SuccessRate, 0.001)
}

func TestAnalyticsService_PaymentAnalytics_NoOrdersSuccessRateIsZero(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().List(ctx, 0, 0).Return(nil, nil)

	result, err := fx.service.PaymentAnalytics(ctx)

	require.NoError(t, err)
	assert.Zero(t, result.SuccessRate)
	assert.Zero(t, result.TotalTransactions)
}

func TestAnalyticsService_UserAnalytics_DistinctBuyers(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, 0, 0).Return([]entity.User{
		{ID: "u1", Role: entity.RoleAdmin},
		{ID: "u2", Role: entity.RoleArtist},
		{ID: "u3", Role: entity.RoleUser},
		{ID: "u4", Role: entity.RoleUser},
	}, nil)
	fx.orderRepo.EXPECT().List(ctx, 0, 0).Return([]entity.Order{
		{ID: "o1", UserID: "u3"},
		{ID: "o2", UserID: "u3"},
		{ID: "o3", UserID: "u4"},
	}, nil)

	result, err := fx.service.UserAnalytics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalUsers)
	assert.Equal(t, 1, result.AdminCount)
	assert.Equal(t, 1, result.ArtistCount)
	assert.Equal(t, 2, result.RegularUsers)
	assert.Equal(t, 2, result.OrdersByUsers)
}

func TestAnalyticsService_ArtistAnalytics_ScopedToArtistProducts(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByArtist(ctx, "artist-1").
		Return([]entity.Product{{ID: "p1"}, {ID: "p2"}}, nil)
	fx.orderRepo.EXPECT().List(ctx, 0, 0).Return([]entity.Order{
		{
			ID:            "o1",
			Total:         2500,
			PaymentStatus: entity.PaymentStatusCompleted,
			Items:         []entity.OrderItem{{ProductID: "p1"}, {ProductID: "p9"}},
		},
		{
			ID:            "o2",
			Total:         1000,
			PaymentStatus: entity.PaymentStatusPending,
			Items:         []entity.OrderItem{{ProductID: "p2"}},
		},
		{
			ID:            "o3",
			Total:         9000,
			PaymentStatus: entity.PaymentStatusCompleted,
			Items:         []entity.OrderItem{{ProductID: "p9"}},
		},
	}, nil)

	result, err := fx.service.ArtistAnalytics(ctx, "artist-1")

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalProducts)
	assert.Equal(t, 2, result.TotalOrders)
	assert.Equal(t, 1, result.CompletedOrders)
	assert.Equal(t, 1, result.PendingOrders)
	assert.InDelta(t, 2500.0, result.TotalSales, 0.001)
	assert.Equal(t, 2, result.TotalItemsSold)
	assert.InDelta(t, 2500.0, result.AverageOrderValue, 0.001)
}
