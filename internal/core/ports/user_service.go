package ports

import (
	"context"
	"time"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// UpdateUserInput holds the self-service profile update. Nil fields are
// left untouched.
type UpdateUserInput struct {
	Username    *string
	FullName    *string
	DateOfBirth *time.Time
}

// EditPasswordInput re-verifies the old credentials before the change.
type EditPasswordInput struct {
	Username    string
	OldPassword string
	NewPassword string
}

// UserService covers the authenticated user's own account operations.
type UserService interface {
	Get(ctx context.Context, p domain.Principal) (*domain.User, error)
	Update(ctx context.Context, p domain.Principal, input UpdateUserInput) (*domain.User, error)
	EditPassword(ctx context.Context, p domain.Principal, input EditPasswordInput) error
	// DeleteAccount removes the principal's account and all its tasks after
	// credential re-verification.
	DeleteAccount(ctx context.Context, p domain.Principal, username, password string) error
}
