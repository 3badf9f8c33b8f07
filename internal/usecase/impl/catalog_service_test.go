package impl

import (
	"context"
	"testing"

	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/repository"
	mockRepo "gia/internal/mocks/repository"
	"gia/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCatalogService(productRepo, newDiscardLogger())

	return catalogServiceFixtures{
		service:     svc,
		productRepo: productRepo,
	}
}

func testProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Title:       "Madhubani Painting",
		Description: "Hand-painted on handmade paper",
		Price:       2500,
		Stock:       3,
		Category:    "paintings",
	}
}

func TestCatalogService_CreateProduct_ForbiddenForRegularUser(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "uid-1", Role: entity.RoleUser}

	_, err := fx.service.CreateProduct(ctx, caller, testProductInput())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_CreateProduct_ArtistOwnsProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "artist-1", Role: entity.RoleArtist}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "artist-1", product.ArtistID)
		}).
		Return("prod-1", nil)

	product, err := fx.service.CreateProduct(ctx, caller, testProductInput())

	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)
	assert.Equal(t, "artist-1", product.ArtistID)
}

func TestCatalogService_UpdateProduct_NonOwnerForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "artist-2", Role: entity.RoleArtist}
	existing := &entity.Product{ID: "prod-1", ArtistID: "artist-1", Title: "Original"}

	fx.productRepo.EXPECT().
		FindByID(ctx, "prod-1").
		Return(existing, nil)

	_, err := fx.service.UpdateProduct(ctx, caller, "prod-1", testProductInput())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_UpdateProduct_AdminBypassesOwnership(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	caller := &entity.User{ID: "admin-1", Role: entity.RoleAdmin}
	existing := &entity.Product{ID: "prod-1", ArtistID: "artist-1", Title: "Original"}
	input := testProductInput()

	fx.productRepo.EXPECT().
		FindByID(ctx, "prod-1").
		Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, "prod-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, fields map[string]interface{}) {
			// Ownership never changes on update.
			assert.NotContains(t, fields, "artistId")
			assert.Equal(t, input.Title, fields["title"])
		}).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, caller, "prod-1", input)

	require.NoError(t, err)
	assert.Equal(t, "artist-1", updated.ArtistID)
	assert.Equal(t, input.Title, updated.Title)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, "missing")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_ListProducts_CategoryAndFeaturedFilters(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []entity.Product{
		{ID: "p1", Category: "paintings", Featured: true},
		{ID: "p2", Category: "paintings", Featured: false},
		{ID: "p3", Category: "textiles", Featured: true},
	}

	fx.productRepo.EXPECT().
		List(ctx, 0, 0).
		Return(products, nil)

	filtered, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Category: "paintings",
		Featured: true,
	})

	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ID)
}
