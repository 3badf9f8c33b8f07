package repository

import (
	"context"

	"gia/internal/domain/entity"
)

// MagazineRepository defines the standard operations for magazine persistence.
type MagazineRepository interface {
	// Create persists a new magazine issue and returns its generated document ID.
	Create(ctx context.Context, magazine *entity.Magazine) (string, error)

	// List retrieves magazine issues. A non-positive limit means no limit.
	List(ctx context.Context, limit, offset int) ([]entity.Magazine, error)
}
