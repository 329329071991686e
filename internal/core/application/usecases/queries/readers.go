// Package queries contains read operations. Handlers never change state and
// return plain response structs instead of aggregates.
package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
)

// Read-side views of the repositories. ports.UserRepository and
// ports.OrderRepository satisfy them.
type (
	UserReader interface {
		FindByID(ctx context.Context, id kernel.UUID) (*user.User, error)
		FindByEmail(ctx context.Context, email string) (*user.User, error)
		FindAll(ctx context.Context) ([]*user.User, error)
	}

	OrderReader interface {
		FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error)
		FindByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
		FindAll(ctx context.Context) ([]*order.Order, error)
	}
)
