package middleware

import (
	"strings"

	"gia/config"
	"gia/internal/delivery/http/response"
	"gia/internal/domain/entity"
	"gia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// callerKey is the echo.Context key the resolved caller profile is stored
// under by Authenticate.
const callerKey = "caller"

// AuthMiddleware provides bearer-token authentication and role/superuser
// authorization for route groups.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
	cfg  *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, cfg: cfg}
}

// Caller returns the profile Authenticate stored on the context, or nil when
// the route was not authenticated.
func Caller(c echo.Context) *entity.User {
	caller, _ := c.Get(callerKey).(*entity.User)

	return caller
}

// Authenticate resolves the bearer token into a caller profile and stores it
// on the context. Resolution provisions a profile lazily on first
// authenticated access, so every downstream handler sees a complete caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		caller, err := m.auth.ResolveCaller(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		c.Set(callerKey, caller)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds one of the given
// roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller(c)
			if caller == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: caller information missing")
			}

			for _, role := range roles {
				if caller.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
		}
	}
}

// RequireSuperuser checks the caller against the designated superuser email.
// Superuser authority is email equality, deliberately independent of the
// stored role field. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireSuperuser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := Caller(c)
		if caller == nil || caller.Email != m.cfg.Superuser.Email {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: superuser only")
		}

		return next(c)
	}
}
