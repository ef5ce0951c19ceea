package ports

import (
	"context"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	// ListByOwner returns a page of one user's tasks ordered by id.
	ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]*domain.Task, error)
	// List returns a page of all tasks ordered by id.
	List(ctx context.Context, page, size int) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	// DeleteByOwner removes every task of one user; used when the account
	// itself is deleted.
	DeleteByOwner(ctx context.Context, ownerID int64) error
	// RenameOwner rewrites the denormalized owner username on all of one
	// user's tasks after a username change.
	RenameOwner(ctx context.Context, ownerID int64, newUsername string) error
}
