package handler

import (
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createTaskRequest deliberately has no owner field: ownership always comes
// from the authenticated identity, and any owner-like field in the payload
// is ignored by Bind.
type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=500"`
	Description string `json:"description" validate:"max=2000"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=500"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// --- Response types, owned by the transport layer ---

type taskResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
	if t.CompletedAt != nil {
		ts := t.CompletedAt.UTC()
		resp.CompletedAt = &ts
	}
	return resp
}

func toTaskListResponse(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

type activityResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Action    string    `json:"action"`
	TaskTitle string    `json:"task_title"`
	CreatedAt time.Time `json:"created_at"`
}

func toActivityListResponse(items []*domain.Activity) []activityResponse {
	out := make([]activityResponse, len(items))
	for i, a := range items {
		out[i] = activityResponse{
			ID:        a.ID,
			TaskID:    a.TaskID,
			Action:    string(a.Action),
			TaskTitle: a.TaskTitle,
			CreatedAt: a.CreatedAt.UTC(),
		}
	}
	return out
}
