package ports

import (
	"context"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// AdminService covers the administrator endpoint group. Role membership is
// enforced by the route gate before any of these run; admin immunity and
// credential re-verification are enforced here.
type AdminService interface {
	ListUsers(ctx context.Context, page, size int) ([]*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	LockUser(ctx context.Context, p domain.Principal, id int64) error
	UnlockUser(ctx context.Context, p domain.Principal, id int64) error
	// DeleteUser re-verifies the acting admin's own credentials before
	// removing the target account and its tasks.
	DeleteUser(ctx context.Context, p domain.Principal, id int64, username, password string) error
	ListTasks(ctx context.Context, page, size int) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
}
