package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always stored and loaded together with its items and status history.
type OrderRepository interface {
	// Save upserts the order header and inserts items and history entries that are
	// not stored yet. Already stored items and history rows are never rewritten.
	// The whole aggregate is written atomically.
	Save(ctx context.Context, aggregate *order.Order) error

	// FindByID loads the full aggregate with items in insertion order and history
	// oldest first. Returns errs.ErrObjectNotFound when the order does not exist.
	FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByUser returns the user's orders, oldest first.
	FindByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// FindAll returns every order, oldest first.
	FindAll(ctx context.Context) ([]*order.Order, error)

	// FindByStatusCreatedBefore returns orders in the given status created strictly
	// before the given instant, oldest first.
	FindByStatusCreatedBefore(ctx context.Context, status order.Status, before time.Time) ([]*order.Order, error)
}
