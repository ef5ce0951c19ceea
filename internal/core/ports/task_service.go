package ports

import (
	"context"
	"time"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// CreateTaskInput carries the data for a new task; the owner is always
// the authenticated principal, never part of the payload.
type CreateTaskInput struct {
	Description string
	DueDate     *time.Time
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Description *string
	DueDate     *time.Time
}

// TaskService covers task CRUD for the authenticated user. Reads allow
// the owner or an admin; mutations allow the owner only.
type TaskService interface {
	Create(ctx context.Context, p domain.Principal, input CreateTaskInput) (*domain.Task, error)
	ListOwn(ctx context.Context, p domain.Principal, page, size int) ([]*domain.Task, error)
	GetByID(ctx context.Context, p domain.Principal, id int64) (*domain.Task, error)
	Update(ctx context.Context, p domain.Principal, id int64, input UpdateTaskInput) (*domain.Task, error)
	MarkCompleted(ctx context.Context, p domain.Principal, id int64) error
	Delete(ctx context.Context, p domain.Principal, id int64) error
}
