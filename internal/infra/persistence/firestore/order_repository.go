package firestore

import (
	"context"

	"gia/internal/domain/entity"
	"gia/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

const collectionOrders = "orders"

type orderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository backed by the record store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	if err := r.store.Get(ctx, collectionOrders, id, &order); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, err
	}
	order.ID = id

	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (string, error) {
	return r.store.Add(ctx, collectionOrders, order)
}

func (r *orderRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, collectionOrders, id, fields); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return repository.ErrOrderNotFound
		}

		return err
	}

	return nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	snaps, err := r.store.Query(ctx, collectionOrders, "userId", "==", userID, 0)
	if err != nil {
		return nil, err
	}

	return decodeOrders(snaps)
}

func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]entity.Order, error) {
	snaps, err := r.store.List(ctx, collectionOrders, limit, offset)
	if err != nil {
		return nil, err
	}

	return decodeOrders(snaps)
}

func decodeOrders(snaps []*firestore.DocumentSnapshot) ([]entity.Order, error) {
	orders := make([]entity.Order, 0, len(snaps))
	for _, snap := range snaps {
		var order entity.Order
		if err := snap.DataTo(&order); err != nil {
			return nil, errors.Wrapf(err, "failed to decode order %s", snap.Ref.ID)
		}
		order.ID = snap.Ref.ID
		orders = append(orders, order)
	}

	return orders, nil
}
