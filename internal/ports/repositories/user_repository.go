package repositories

import (
	"context"

	"notehub/internal/domain/entities"
)

// UserRepository is the store-facing contract for accounts.
type UserRepository interface {
	// Create inserts a user and returns it with the store-assigned ID and
	// timestamps.
	Create(ctx context.Context, email, passwordHash string) (*entities.User, error)

	// FindByEmail returns the user with the given email, or (nil, nil) when
	// no such account exists.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByID returns the user with the given ID, or (nil, nil) when no such
	// account exists.
	FindByID(ctx context.Context, userID string) (*entities.User, error)
}
