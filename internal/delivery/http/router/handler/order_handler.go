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

// OrderHandler holds dependencies for the order-payment lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles checkout: a gateway intent plus a pending order record.
func (h *OrderHandler) Create(c echo.Context) error {
	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), middleware.Caller(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order created successfully")
}

// ListOwn returns the caller's own orders.
func (h *OrderHandler) ListOwn(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context(), middleware.Caller(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ConfirmPayment applies the verified payment confirmation to the order.
func (h *OrderHandler) ConfirmPayment(c echo.Context) error {
	var input *usecase.ConfirmPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ConfirmPayment(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "confirmed"}, "Payment confirmed successfully")
}
