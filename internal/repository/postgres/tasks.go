package postgres

import (
	"context"
	"fmt"

	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepository handles task data access. Every statement filters by
// owner_id so one user's tasks are invisible to another.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// ListByOwner retrieves all tasks owned by a user
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id
		FROM tasks
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Priority,
			&task.Complete,
			&task.OwnerID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

// Create inserts a new task and assigns its ID
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, description, priority, complete, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Priority,
		task.Complete,
		task.OwnerID,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of an owned task
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID int64, req domain.TaskRequest) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, complete = $4
		WHERE id = $5 AND owner_id = $6
	`

	tag, err := r.pool.Exec(ctx, query,
		req.Title,
		req.Description,
		req.Priority,
		req.Complete,
		taskID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes an owned task
func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	tag, err := r.pool.Exec(ctx, query, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
