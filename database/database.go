package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopsight/models"
)

// DB wraps the pgx connection pool. The handle is passed explicitly into
// every component that queries the store; there is no package-level pool.
type DB struct {
	Pool *pgxpool.Pool
}

// Connect sets up the database connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	log.Println("Successfully connected to the database")
	return &DB{Pool: pool}, nil
}

// Ping checks that the store is still reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close closes the database connection pool.
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		log.Println("Database connection pool closed")
	}
}

// WrapErr maps driver errors onto the service error taxonomy. A deadline
// expiry becomes ErrTimeout; anything else from the store becomes
// ErrStoreUnavailable.
func WrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", models.ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", models.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
}
