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

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input *usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User created successfully")
}

// CurrentUser returns the authenticated caller's profile.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	caller := middleware.Caller(c)
	if caller == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "No caller on request")
	}

	return response.Success(c, http.StatusOK, caller, "Profile retrieved successfully")
}
