package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akoval/taskhub/internal/repository"
	"github.com/go-sql-driver/mysql"
)

// Store wraps a MySQL database and its repositories. The DSN uses the
// driver's native form: user:pass@tcp(host:port)/dbname.
type Store struct {
	db    *sql.DB
	users *UserRepository
	tasks *TaskRepository
}

// New connects to a MySQL database
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	s.users = &UserRepository{db: db}
	s.tasks = &TaskRepository{db: db}
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
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// ER_DUP_ENTRY
const codeDuplicateEntry = 1062

func isUniqueViolation(err error) bool {
	var merr *mysql.MySQLError
	return errors.As(err, &merr) && merr.Number == codeDuplicateEntry
}
