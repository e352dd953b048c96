package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akoval/taskhub/internal/api/middleware"
	"github.com/akoval/taskhub/internal/api/response"
	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/repository"
	"github.com/akoval/taskhub/internal/service"
	"github.com/go-chi/chi/v5"
)

// TaskHandler handles task endpoints. All of them run behind the auth
// guard; the owner ID is always the authenticated identity's.
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List returns all tasks owned by the caller
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Could not validate user.")
		return
	}

	tasks, err := h.taskService.List(r.Context(), identity.UserID)
	if err != nil {
		response.InternalError(w, "internal server error")
		return
	}

	response.JSON(w, http.StatusOK, tasks)
}

// Create adds a new task owned by the caller
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Could not validate user.")
		return
	}

	var input domain.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.UnprocessableEntity(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.UnprocessableEntity(w, validationDetail(err))
		return
	}

	if _, err := h.taskService.Create(r.Context(), identity.UserID, input); err != nil {
		response.InternalError(w, "internal server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update replaces an owned task. A task that does not exist or belongs
// to another user is reported as not found either way.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Could not validate user.")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		response.UnprocessableEntity(w, "task id must be a positive integer")
		return
	}

	var input domain.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.UnprocessableEntity(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.UnprocessableEntity(w, validationDetail(err))
		return
	}

	if err := h.taskService.Update(r.Context(), identity.UserID, taskID, input); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Task not found.")
			return
		}
		response.InternalError(w, "internal server error")
		return
	}

	response.NoContent(w)
}

// Delete removes an owned task
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Could not validate user.")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		response.UnprocessableEntity(w, "task id must be a positive integer")
		return
	}

	if err := h.taskService.Delete(r.Context(), identity.UserID, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Task not found.")
			return
		}
		response.InternalError(w, "internal server error")
		return
	}

	response.NoContent(w)
}

func parseTaskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("task id must be positive")
	}
	return id, nil
}
