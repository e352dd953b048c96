package repository

import (
	"context"
	"errors"

	"github.com/akoval/taskhub/internal/domain"
)

// Sentinel errors shared by every storage backend.
var (
	// ErrDuplicate is returned when an insert violates a unique
	// constraint (username or email already taken).
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned by owner-scoped updates and deletes
	// that matched no row.
	ErrNotFound = errors.New("record not found")
)

// UserRepository handles credential persistence
type UserRepository interface {
	// FindByUsername returns nil, nil when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameOrEmail returns nil, nil when neither matches.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	// Create inserts the user and fills in the assigned ID. Returns
	// ErrDuplicate when the username or email is already registered.
	Create(ctx context.Context, user *domain.User) error
}

// TaskRepository handles task persistence. Every query is scoped by the
// owner's user ID; a task belonging to another user behaves as absent.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	// Update replaces the mutable fields of an owned task. Returns
	// ErrNotFound when the task does not exist or belongs to someone else.
	Update(ctx context.Context, ownerID, taskID int64, req domain.TaskRequest) error
	// Delete removes an owned task. Returns ErrNotFound when the task
	// does not exist or belongs to someone else.
	Delete(ctx context.Context, ownerID, taskID int64) error
}

// Store bundles the repositories backed by one database
type Store interface {
	Users() UserRepository
	Tasks() TaskRepository
	Ping(ctx context.Context) error
	Close()
}
