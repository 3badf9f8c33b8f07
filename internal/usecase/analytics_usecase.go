package usecase

import "context"

// AnalyticsUsecase computes derived metrics over orders, users and products.
// All computations are pure read-side folds over already-fetched collections.
type AnalyticsUsecase interface {
	// ArtistAnalytics aggregates over orders containing the artist's products.
	ArtistAnalytics(ctx context.Context, artistID string) (*ArtistAnalytics, error)

	// Overview aggregates global marketplace figures.
	Overview(ctx context.Context) (*OverviewAnalytics, error)

	// PaymentAnalytics aggregates payment settlement figures.
	PaymentAnalytics(ctx context.Context) (*PaymentAnalytics, error)

	// UserAnalytics aggregates account and buyer figures.
	UserAnalytics(ctx context.Context) (*UserAnalytics, error)
}

// ArtistAnalytics is the artist dashboard aggregate. An order counts fully
// toward the artist when at least one line item references one of their
// products.
type ArtistAnalytics struct {
	TotalProducts     int     `json:"totalProducts"`
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	TotalSales        float64 `json:"totalSales"`
	TotalItemsSold    int     `json:"totalItemsSold"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// OverviewAnalytics is the global dashboard aggregate.
type OverviewAnalytics struct {
	TotalUsers        int     `json:"totalUsers"`
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalProducts     int     `json:"totalProducts"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// PaymentAnalytics is the settlement aggregate.
type PaymentAnalytics struct {
	CompletedPayments int     `json:"completedPayments"`
	CompletedRevenue  float64 `json:"completedRevenue"`
	PendingPayments   int     `json:"pendingPayments"`
	PendingRevenue    float64 `json:"pendingRevenue"`
	FailedPayments    int     `json:"failedPayments"`
	TotalTransactions int     `json:"totalTransactions"`
	SuccessRate       float64 `json:"successRate"`
}

// UserAnalytics is the account aggregate. OrdersByUsers is the distinct
// buyer count across all orders.
type UserAnalytics struct {
	TotalUsers    int `json:"totalUsers"`
	AdminCount    int `json:"adminCount"`
	ArtistCount   int `json:"artistCount"`
	RegularUsers  int `json:"regularUsers"`
	OrdersByUsers int `json:"ordersByUsers"`
}
