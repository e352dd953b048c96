package postgres

import (
	"context"
	"fmt"

	"github.com/akoval/taskhub/internal/config"
	"github.com/akoval/taskhub/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool and its repositories
type Store struct {
	pool  *pgxpool.Pool
	users *UserRepository
	tasks *TaskRepository
}

// New creates a PostgreSQL-backed store
func New(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{pool: pool}
	s.users = &UserRepository{pool: pool}
	s.tasks = &TaskRepository{pool: pool}
	return s, nil
}

// Users returns the user repository
func (s *Store) Users() repository.UserRepository {
	return s.users
}

// Tasks returns the task repository
func (s *Store) Tasks() repository.TaskRepository {
	return s.tasks
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
