package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notehub/internal/domain/entities"
	"notehub/internal/ports/repositories"
	"notehub/pkg/logger"
)

const userColumns = `id, email, password_hash, created_at, updated_at`

// UserRepository implements repositories.UserRepository on Postgres.
type UserRepository struct {
	pool PgxPool
}

// NewUserRepository creates a user repository on the given pool.
func NewUserRepository(pool PgxPool) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts an account and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Create"))
	log.Debug(ctx, "creating user", zap.String("email", email))

	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash)
         VALUES ($1, $2)
         RETURNING `+userColumns,
		email, passwordHash,
	)

	user, err := scanUser(row)
	if err != nil {
		log.Error(ctx, "failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Debug(ctx, "user created", zap.String("userID", user.ID))
	return user, nil
}

// FindByEmail returns the account with the given email, or (nil, nil).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindByEmail"))
	log.Debug(ctx, "finding user by email")

	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Error(ctx, "failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, nil
}

// FindByID returns the account with the given ID, or (nil, nil).
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindByID"))
	log.Debug(ctx, "finding user by id", zap.String("userID", userID))

	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Error(ctx, "failed to find user by id", zap.Error(err))
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return user, nil
}
