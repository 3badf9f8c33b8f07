package repository

import (
	"context"
	"errors"

	"gia/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order document is absent.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are never hard-deleted.
type OrderRepository interface {
	// FindByID retrieves a single order by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Create persists a new order and returns its generated document ID.
	Create(ctx context.Context, order *entity.Order) (string, error)

	// Update applies a partial field update to an existing order.
	Update(ctx context.Context, id string, fields map[string]any) error

	// FindByUser retrieves all orders placed by the given user.
	FindByUser(ctx context.Context, userID string) ([]entity.Order, error)

	// List retrieves orders. A non-positive limit means no limit.
	List(ctx context.Context, limit, offset int) ([]entity.Order, error)
}
