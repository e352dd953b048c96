package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akoval/taskhub/internal/repository"
	"modernc.org/sqlite"
)

// Store wraps a SQLite database and its repositories. SQLite is the
// default backend: a local file, nothing to install.
type Store struct {
	db    *sql.DB
	users *UserRepository
	tasks *TaskRepository
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	priority INTEGER NOT NULL,
	complete INTEGER NOT NULL DEFAULT 0,
	owner_id INTEGER NOT NULL REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_tasks_owner_id ON tasks(owner_id);
`

// New opens (and creates, if needed) a SQLite database at the given
// path and bootstraps the schema.
func New(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// The pure-Go driver serializes writers; a single connection avoids
	// SQLITE_BUSY under concurrent requests and keeps :memory: databases
	// on one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
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

// SQLITE_CONSTRAINT_UNIQUE and SQLITE_CONSTRAINT_PRIMARYKEY extended codes.
const (
	codeConstraintUnique     = 2067
	codeConstraintPrimaryKey = 1555
)

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == codeConstraintUnique || code == codeConstraintPrimaryKey
	}
	return false
}
