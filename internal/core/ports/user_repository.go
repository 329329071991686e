// Package ports defines the persistence contracts the application layer depends on.
// Adapters in internal/adapters/out implement them.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Save inserts the user or updates the stored row with the same id.
	// A different user already holding the email fails with errs.ErrObjectAlreadyExists.
	Save(ctx context.Context, aggregate *user.User) error

	// FindByID returns errs.ErrObjectNotFound when no user has the id.
	FindByID(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByEmail returns errs.ErrObjectNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindAll returns every user ordered by creation time.
	FindAll(ctx context.Context) ([]*user.User, error)
}
