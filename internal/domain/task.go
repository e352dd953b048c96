package domain

// Task represents a to-do item owned by a single user
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     int64  `json:"owner_id"`
}

// TaskRequest represents task create/update data
type TaskRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=3"`
	Priority    int    `json:"priority" validate:"required,gt=0,lt=6"`
	Complete    bool   `json:"complete"`
}
