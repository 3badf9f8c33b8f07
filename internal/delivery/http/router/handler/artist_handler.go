package handler

import (
	"log/slog"
	"net/http"

	"gia/internal/delivery/http/middleware"
	"gia/internal/delivery/http/response"
	"gia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArtistHandler holds dependencies for the artist dashboard handlers. Every
// handler is scoped to the caller's own products and orders.
type ArtistHandler struct {
	catalog   usecase.CatalogUsecase
	orders    usecase.OrderUsecase
	analytics usecase.AnalyticsUsecase
	logger    *slog.Logger
}

// NewArtistHandler is the constructor for ArtistHandler, injected by Fx.
func NewArtistHandler(
	catalog usecase.CatalogUsecase,
	orders usecase.OrderUsecase,
	analytics usecase.AnalyticsUsecase,
	logger *slog.Logger,
) *ArtistHandler {
	return &ArtistHandler{
		catalog:   catalog,
		orders:    orders,
		analytics: analytics,
		logger:    logger,
	}
}

// Products returns the caller's own products.
func (h *ArtistHandler) Products(c echo.Context) error {
	products, err := h.catalog.ArtistProducts(c.Request().Context(), middleware.Caller(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Artist products retrieved successfully")
}

// Orders returns orders containing at least one of the caller's products.
func (h *ArtistHandler) Orders(c echo.Context) error {
	orders, err := h.orders.ArtistOrders(c.Request().Context(), middleware.Caller(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Artist orders retrieved successfully")
}

// Analytics returns sales aggregates over the caller's products.
func (h *ArtistHandler) Analytics(c echo.Context) error {
	result, err := h.analytics.ArtistAnalytics(c.Request().Context(), middleware.Caller(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Artist analytics retrieved successfully")
}
