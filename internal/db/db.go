// Package db initializes the note service database, applying migrations
// before the pool is opened.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"notehub/internal/config"
	"notehub/pkg/db/postgres"
	"notehub/pkg/logger"
)

// Log messages.
const (
	LogDBInitializing    = "initializing notehub database"
	LogDBInitialized     = "notehub database initialized successfully"
	LogMigrationStarting = "starting database migrations"
)

// Error messages.
const (
	ErrDBMigrations      = "failed to apply database migrations"
	ErrDBConnection      = "failed to connect to database"
	ErrGetPath           = "failed to get path"
	ErrDBCheckConnection = "error checking the database connection"
)

const filePrefix = "file://"

// DB represents the service database connection.
type DB struct {
	database *postgres.Database
}

// New applies the migrations and opens the connection pool.
func New(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	migrationsPath := migrationsDir
	if !filepath.IsAbs(migrationsDir) {
		absPath, err := filepath.Abs(migrationsDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", ErrDBMigrations, ErrGetPath, err)
		}
		migrationsPath = absPath
	}
	migrationsPath = filePrefix + migrationsPath

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database}, nil
}

// Close closes the connection pool.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool returns the connection pool.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping checks database availability.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.database.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDBCheckConnection, err)
	}
	return nil
}
