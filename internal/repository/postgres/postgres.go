package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage owns the shared connection pool. It is constructed once at
// startup and handed to the service layer; there is no package-level
// connection state.
type Storage struct {
	pool *pgxpool.Pool
}

// NewConnection opens the pool and verifies the database is reachable
// before the server starts taking requests.
func NewConnection(connString string) (*Storage, error) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{
		pool: pool,
	}, nil
}

// Close closes the database connection pool
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
