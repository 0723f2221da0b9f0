package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed setup.sql
var setupSQL string

// Open connects to PostgreSQL and makes sure the tables exist.
func Open(ctx context.Context, url string) (*pgxpool.Pool, error) {
	logger := slog.Default().With("component", "database")

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(ctx, url)

	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}

	if _, err := pool.Exec(ctx, setupSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	logger.Info("initialized database tables")

	return pool, nil
}
