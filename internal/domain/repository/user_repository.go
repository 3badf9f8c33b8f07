// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gia/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user profile not found")

// UserRepository defines the standard operations for user profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user profile by its identity UID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert writes the profile under its identity UID. Writing the same
	// profile twice is a no-op overwrite, which is what keeps lazy
	// provisioning idempotent under concurrent first requests.
	Upsert(ctx context.Context, user *entity.User) error

	// Update applies a partial field update to an existing profile.
	Update(ctx context.Context, id string, fields map[string]any) error

	// List retrieves user profiles. A non-positive limit means no limit.
	List(ctx context.Context, limit, offset int) ([]entity.User, error)
}
