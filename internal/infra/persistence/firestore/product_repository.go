package firestore

import (
	"context"

	"gia/internal/domain/entity"
	"gia/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

const collectionProducts = "products"

type productRepository struct {
	store *Store
}

// NewProductRepository creates a product repository backed by the record store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := r.store.Get(ctx, collectionProducts, id, &product); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, err
	}
	product.ID = id

	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) (string, error) {
	return r.store.Add(ctx, collectionProducts, product)
}

func (r *productRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, collectionProducts, id, fields); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return repository.ErrProductNotFound
		}

		return err
	}

	return nil
}

func (r *productRepository) List(ctx context.Context, limit, offset int) ([]entity.Product, error) {
	snaps, err := r.store.List(ctx, collectionProducts, limit, offset)
	if err != nil {
		return nil, err
	}

	return decodeProducts(snaps)
}

func (r *productRepository) FindByArtist(ctx context.Context, artistID string) ([]entity.Product, error) {
	snaps, err := r.store.Query(ctx, collectionProducts, "artistId", "==", artistID, 0)
	if err != nil {
		return nil, err
	}

	return decodeProducts(snaps)
}

func decodeProducts(snaps []*firestore.DocumentSnapshot) ([]entity.Product, error) {
	products := make([]entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		var product entity.Product
		if err := snap.DataTo(&product); err != nil {
			return nil, errors.Wrapf(err, "failed to decode product %s", snap.Ref.ID)
		}
		product.ID = snap.Ref.ID
		products = append(products, product)
	}

	return products, nil
}
