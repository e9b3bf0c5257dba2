package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// AuthResult is returned by Register and Login: the account plus a freshly
// signed session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService defines the account use cases.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// CurrentUser resolves the principal behind a verified token. A subject
	// that no longer exists is an authentication failure, not a 404.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
