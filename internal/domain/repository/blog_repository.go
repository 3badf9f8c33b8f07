package repository

import (
	"context"
	"errors"

	"gia/internal/domain/entity"
)

// ErrPostNotFound is returned when a blog post document is absent.
var ErrPostNotFound = errors.New("blog post not found")

// BlogRepository defines the standard operations for blog post persistence.
type BlogRepository interface {
	// FindByID retrieves a single post by its document ID.
	FindByID(ctx context.Context, id string) (*entity.BlogPost, error)

	// Create persists a new post and returns its generated document ID.
	Create(ctx context.Context, post *entity.BlogPost) (string, error)

	// List retrieves posts. A non-positive limit means no limit.
	List(ctx context.Context, limit, offset int) ([]entity.BlogPost, error)
}
