package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/oklog/ulid/v2"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

// Client owns the connection pool and all SQL for the service.
type Client struct {
	db *pgxpool.Pool
}

// NewClient opens a pool against databaseURL. The first ping is retried with
// exponential backoff so a cold database container doesn't kill startup.
func NewClient(ctx context.Context, databaseURL string) (*Client, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return &Client{db: pool}, nil
}

// Close releases the pool.
func (c *Client) Close(ctx context.Context) {
	c.db.Close()
}

// RunMigrations applies the goose migrations found in dir.
func (c *Client) RunMigrations(ctx context.Context, dir string) error {
	db := stdlib.OpenDBFromPool(c.db)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// NewID generates a sortable unique identifier for any row.
func NewID() string {
	return ulid.Make().String()
}
