// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gia/internal/domain/entity"
)

// AuthUsecase defines identity and account management operations, including
// the caller resolution the authorization middleware depends on.
type AuthUsecase interface {
	// Signup registers a new identity with the provider and writes the
	// initial profile record keyed by the new UID.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// ResolveCaller verifies a bearer token and returns the caller's profile,
	// lazily provisioning one on first authenticated access. Provisioning is
	// an upsert keyed by the identity UID, so concurrent first requests for
	// the same identity converge on a single stable record.
	ResolveCaller(ctx context.Context, token string) (*entity.User, error)

	// GrantAdmin sets the target profile's role to admin and mirrors it into
	// the identity provider's custom claims.
	GrantAdmin(ctx context.Context, userID string) (*entity.User, error)

	// RevokeAdmin resets the target profile's role to user.
	RevokeAdmin(ctx context.Context, userID string) (*entity.User, error)

	// SearchUsers returns profiles whose email or name contains the query,
	// case-insensitively. An empty query returns all profiles.
	SearchUsers(ctx context.Context, query string) ([]entity.User, error)
}

// --- Input/Output DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
}

// SignupOutput is returned after a successful registration.
type SignupOutput struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}
