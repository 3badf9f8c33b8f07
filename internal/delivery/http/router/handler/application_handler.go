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

// ApplicationHandler holds dependencies for work-with-us handlers.
type ApplicationHandler struct {
	uc     usecase.ApplicationUsecase
	logger *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(uc usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit records an artist application from the caller.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var input *usecase.ApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	application, err := h.uc.Submit(c.Request().Context(), middleware.Caller(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}
