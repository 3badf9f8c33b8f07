package repository

import (
	"context"
	"errors"

	"gia/internal/domain/entity"
)

// ErrProductNotFound is returned when a product document is absent.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product and returns its generated document ID.
	Create(ctx context.Context, product *entity.Product) (string, error)

	// Update applies a partial field update to an existing product.
	Update(ctx context.Context, id string, fields map[string]any) error

	// List retrieves products. A non-positive limit means no limit.
	List(ctx context.Context, limit, offset int) ([]entity.Product, error)

	// FindByArtist retrieves all products owned by the given artist.
	FindByArtist(ctx context.Context, artistID string) ([]entity.Product, error)
}
