package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// CreateTaskInput carries the client-supplied fields for a new task. The
// owner is never part of this input: it always comes from the
// authenticated identity.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput carries a partial task edit. Nil fields are left
// untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
}

// TaskService defines the task use cases. Every operation that takes a task
// id enforces the ownership guard: not-found before forbidden.
type TaskService interface {
	Create(ctx context.Context, userID string, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Get(ctx context.Context, id, userID string) (*domain.Task, error)
	Update(ctx context.Context, id, userID string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
	ToggleComplete(ctx context.Context, id, userID string) (*domain.Task, error)
}
