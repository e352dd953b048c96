package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/repository"
)

// TaskRepository handles task data access, always scoped by owner_id
type TaskRepository struct {
	db *sql.DB
}

// ListByOwner retrieves all tasks owned by a user
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id
		FROM tasks
		WHERE owner_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
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
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Priority,
		task.Complete,
		task.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read task id: %w", err)
	}
	task.ID = id

	return nil
}

// Update replaces the mutable fields of an owned task
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID int64, req domain.TaskRequest) error {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, complete = ?
		WHERE id = ? AND owner_id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
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

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes an owned task
func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND owner_id = ?`

	res, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
