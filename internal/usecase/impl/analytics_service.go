package impl

import (
	"context"
	"log/slog"

	"gia/internal/domain/entity"
	"gia/internal/domain/repository"
	"gia/internal/usecase"

	"github.com/pkg/errors"
)

// analyticsService implements the AnalyticsUsecase interface. All aggregates
// are folds over wholesale-fetched collections; averages over an empty set
// are defined as zero.
type analyticsService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

func (srv *analyticsService) ArtistAnalytics(ctx context.Context, artistID string) (*usecase.ArtistAnalytics, error) {
	products, err := srv.productRepo.FindByArtist(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist products")
	}

	productIDs := make(map[string]struct{}, len(products))
	for _, product := range products {
		productIDs[product.ID] = struct{}{}
	}

	allOrders, err := srv.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	// In-memory intersection join over line items; an order counts fully as
	// soon as one line references one of the artist's products.
	var artistOrders []entity.Order
	for _, order := range allOrders {
		if order.ContainsProduct(productIDs) {
			artistOrders = append(artistOrders, order)
		}
	}

	result := &usecase.ArtistAnalytics{
		TotalProducts: len(products),
		TotalOrders:   len(artistOrders),
	}

	for _, order := range artistOrders {
		switch order.PaymentStatus {
		case entity.PaymentStatusCompleted:
			result.CompletedOrders++
			result.TotalSales += order.Total
			result.TotalItemsSold += len(order.Items)
		case entity.PaymentStatusPending:
			result.PendingOrders++
		}
	}

	if result.CompletedOrders > 0 {
		result.AverageOrderValue = result.TotalSales / float64(result.CompletedOrders)
	}

	return result, nil
}

func (srv *analyticsService) Overview(ctx context.Context) (*usecase.OverviewAnalytics, error) {
	users, err := srv.userRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	orders, err := srv.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	products, err := srv.productRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result := &usecase.OverviewAnalytics{
		TotalUsers:    len(users),
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}

	for _, order := range orders {
		switch order.PaymentStatus {
		case entity.PaymentStatusCompleted:
			result.CompletedOrders++
			result.TotalRevenue += order.Total
		case entity.PaymentStatusPending:
			result.PendingOrders++
		}
	}

	if result.CompletedOrders > 0 {
		result.AverageOrderValue = result.TotalRevenue / float64(result.CompletedOrders)
	}

	return result, nil
}

func (srv *analyticsService) PaymentAnalytics(ctx context.Context) (*usecase.PaymentAnalytics, error) {
	orders, err := srv.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	result := &usecase.PaymentAnalytics{
		TotalTransactions: len(orders),
	}

	for _, order := range orders {
		switch order.PaymentStatus {
		case entity.PaymentStatusCompleted:
			result.CompletedPayments++
			result.CompletedRevenue += order.Total
		case entity.PaymentStatusPending:
			result.PendingPayments++
			result.PendingRevenue += order.Total
		case entity.PaymentStatusFailed:
			result.FailedPayments++
		}
	}

	if len(orders) > 0 {
		result.SuccessRate = float64(result.CompletedPayments) / float64(len(orders)) * 100
	}

	return result, nil
}

func (srv *analyticsService) UserAnalytics(ctx context.Context) (*usecase.UserAnalytics, error) {
	users, err := srv.userRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	orders, err := srv.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	result := &usecase.UserAnalytics{TotalUsers: len(users)}

	for _, user := range users {
		switch user.Role {
		case entity.RoleAdmin:
			result.AdminCount++
		case entity.RoleArtist:
			result.ArtistCount++
		case entity.RoleUser:
			result.RegularUsers++
		}
	}

	buyers := make(map[string]struct{}, len(orders))
	for _, order := range orders {
		buyers[order.UserID] = struct{}{}
	}
	result.OrdersByUsers = len(buyers)

	return result, nil
}
