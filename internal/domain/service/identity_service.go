// Package service defines interfaces to external collaborators so the
// application layer never depends on a vendor SDK directly.
package service

import "context"

// IdentityClaims are the verified claims extracted from a bearer token.
type IdentityClaims struct {
	UID   string
	Email string
	Name  string
}

// IdentityAccount is the minimal account record held by the identity provider.
type IdentityAccount struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// IdentityService is the port to the external identity provider. Every call
// is a fresh round trip; there is no local caching and no retry, because the
// provider does not guarantee idempotent account creation. Implementations
// map provider errors onto the domain error taxonomy at this boundary.
type IdentityService interface {
	// VerifyToken verifies a bearer token and returns its claims.
	// Fails with ErrUnauthenticated for any invalid token.
	VerifyToken(ctx context.Context, token string) (*IdentityClaims, error)

	// CreateAccount registers a new identity. Fails with ErrConflict when the
	// email is already registered.
	CreateAccount(ctx context.Context, email, password, displayName string) (*IdentityAccount, error)

	// GetAccount fetches an identity record. Fails with ErrNotFound.
	GetAccount(ctx context.Context, uid string) (*IdentityAccount, error)

	// DeleteAccount removes an identity record. Fails with ErrNotFound.
	DeleteAccount(ctx context.Context, uid string) error

	// SetRoleClaims replaces the custom claims on an identity, used to mirror
	// role grants into issued tokens.
	SetRoleClaims(ctx context.Context, uid string, claims map[string]any) error
}
