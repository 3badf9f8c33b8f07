package usecase

import (
	"context"

	"gia/internal/domain/entity"
)

// CatalogUsecase defines product listing and management operations.
type CatalogUsecase interface {
	// ListProducts returns products with optional category/featured filters.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct creates a product owned by the caller. Only artists and
	// admins may create products.
	CreateProduct(ctx context.Context, caller *entity.User, input *ProductInput) (*entity.Product, error)

	// UpdateProduct updates a product. Only the owning artist or an admin may
	// update; ownership never changes on update.
	UpdateProduct(ctx context.Context, caller *entity.User, id string, input *ProductInput) (*entity.Product, error)

	// ArtistProducts returns all products owned by the given artist.
	ArtistProducts(ctx context.Context, artistID string) ([]entity.Product, error)
}

// ListProductsInput defines paging and filters for the product listing.
type ListProductsInput struct {
	Limit    int
	Offset   int
	Category string
	Featured bool
}

// ProductInput defines the caller-supplied product fields.
type ProductInput struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	Stock            int      `json:"stock" validate:"gte=0"`
	Category         string   `json:"category" validate:"required"`
	Image            string   `json:"image"`
	Images           []string `json:"images"`
	ArtStory         string   `json:"artStory"`
	CareInstructions string   `json:"careInstructions"`
	CulturalContext  string   `json:"culturalContext"`
	Featured         bool     `json:"featured"`
}
