package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
// Implementations must enforce email uniqueness and surface a violation as
// domain.ErrEmailTaken, including the race between pre-check and insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
