package repository

import (
	"context"

	"gia/internal/domain/entity"
)

// ApplicationRepository defines the standard operations for work-with-us applications.
type ApplicationRepository interface {
	// Create persists a new application and returns its generated document ID.
	Create(ctx context.Context, application *entity.Application) (string, error)
}
