// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"gia/config"
	"gia/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check is a simple handler to check if the service is up. It always
// answers 200 and never touches any upstream system.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.cfg.Env.ServiceName,
	}, "Service is healthy")
}
