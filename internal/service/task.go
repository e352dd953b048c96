package service

import (
	"context"
	"fmt"

	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/repository"
)

// TaskService handles task operations. The owner ID always comes from
// the authenticated identity, never from the request body.
type TaskService struct {
	tasks repository.TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// List retrieves the owner's tasks
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

// Create adds a task owned by the given user
func (s *TaskService) Create(ctx context.Context, ownerID int64, req domain.TaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ownerID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update replaces an owned task's fields. Returns
// repository.ErrNotFound for a missing or foreign task.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, req domain.TaskRequest) error {
	return s.tasks.Update(ctx, ownerID, taskID, req)
}

// Delete removes an owned task. Returns repository.ErrNotFound for a
// missing or foreign task.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	return s.tasks.Delete(ctx, ownerID, taskID)
}
