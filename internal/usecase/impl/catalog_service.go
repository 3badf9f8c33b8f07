package impl

import (
	"context"
	"log/slog"
	"time"

	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/repository"
	"gia/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts pages products and applies category/featured filters on the
// fetched page, the way the store's single-field queries allow.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]entity.Product, error) {
	products, err := srv.productRepo.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	filtered := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if input.Category != "" && product.Category != input.Category {
			continue
		}
		if input.Featured && !product.Featured {
			continue
		}
		filtered = append(filtered, product)
	}

	return filtered, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, caller *entity.User, input *usecase.ProductInput) (*entity.Product, error) {
	if !caller.Role.Privileged() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only artists can create products")
	}

	now := time.Now()
	product := &entity.Product{
		ArtistID:         caller.ID,
		Title:            input.Title,
		Description:      input.Description,
		Price:            input.Price,
		Stock:            input.Stock,
		Category:         input.Category,
		Image:            input.Image,
		Images:           input.Images,
		ArtStory:         input.ArtStory,
		CareInstructions: input.CareInstructions,
		CulturalContext:  input.CulturalContext,
		Featured:         input.Featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	id, err := srv.productRepo.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	product.ID = id

	srv.logger.Info("product created", "productID", id, "artistID", caller.ID)

	return product, nil
}

// UpdateProduct replaces the caller-editable fields. The artistId and
// createdAt of the existing record are preserved.
func (srv *catalogService) UpdateProduct(ctx context.Context, caller *entity.User, id string, input *usecase.ProductInput) (*entity.Product, error) {
	existing, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if existing.ArtistID != caller.ID && caller.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the owning artist can modify this product")
	}

	now := time.Now()
	fields := map[string]any{
		"title":            input.Title,
		"description":      input.Description,
		"price":            input.Price,
		"stock":            input.Stock,
		"category":         input.Category,
		"image":            input.Image,
		"images":           input.Images,
		"artStory":         input.ArtStory,
		"careInstructions": input.CareInstructions,
		"culturalContext":  input.CulturalContext,
		"featured":         input.Featured,
		"updatedAt":        now,
	}

	if err := srv.productRepo.Update(ctx, id, fields); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	updated := *existing
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Price = input.Price
	updated.Stock = input.Stock
	updated.Category = input.Category
	updated.Image = input.Image
	updated.Images = input.Images
	updated.ArtStory = input.ArtStory
	updated.CareInstructions = input.CareInstructions
	updated.CulturalContext = input.CulturalContext
	updated.Featured = input.Featured
	updated.UpdatedAt = now

	return &updated, nil
}

func (srv *catalogService) ArtistProducts(ctx context.Context, artistID string) ([]entity.Product, error) {
	products, err := srv.productRepo.FindByArtist(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist products")
	}

	return products, nil
}
