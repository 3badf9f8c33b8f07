package handler

import (
	"log/slog"
	"net/http"

	"gia/internal/delivery/http/response"
	"gia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the superuser dashboard handlers.
// Authorization is enforced by the routing layer; handlers assume a verified
// superuser caller.
type AdminHandler struct {
	auth      usecase.AuthUsecase
	orders    usecase.OrderUsecase
	analytics usecase.AnalyticsUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	auth usecase.AuthUsecase,
	orders usecase.OrderUsecase,
	analytics usecase.AnalyticsUsecase,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		auth:      auth,
		orders:    orders,
		analytics: analytics,
		logger:    logger,
	}
}

// AnalyticsOverview returns global marketplace aggregates.
func (h *AdminHandler) AnalyticsOverview(c echo.Context) error {
	result, err := h.analytics.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Overview analytics retrieved successfully")
}

// AnalyticsPayments returns payment settlement aggregates.
func (h *AdminHandler) AnalyticsPayments(c echo.Context) error {
	result, err := h.analytics.PaymentAnalytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Payment analytics retrieved successfully")
}

// AnalyticsUsers returns account and buyer aggregates.
func (h *AdminHandler) AnalyticsUsers(c echo.Context) error {
	result, err := h.analytics.UserAnalytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "User analytics retrieved successfully")
}

// SearchUsers filters profiles by an email/name substring.
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	users, err := h.auth.SearchUsers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GrantAdmin promotes the target profile to admin.
func (h *AdminHandler) GrantAdmin(c echo.Context) error {
	user, err := h.auth.GrantAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Admin role granted successfully")
}

// RevokeAdmin demotes the target profile back to a regular user.
func (h *AdminHandler) RevokeAdmin(c echo.Context) error {
	user, err := h.auth.RevokeAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Admin role revoked successfully")
}

// AllOrders returns every order for the superuser dashboard.
func (h *AdminHandler) AllOrders(c echo.Context) error {
	orders, err := h.orders.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
