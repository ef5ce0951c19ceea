package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

// TaskService implements task CRUD with the ownership guard: every
// mutation fetches the task first, then checks the principal against its
// owner before touching anything.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *TaskService {
	if audit == nil {
		audit = ports.NopAuditRecorder{}
	}
	return &TaskService{tasks: tasks, users: users, audit: audit, logger: logger}
}

// Create stores a new task owned by the principal. The owner reference is
// set here, once, and never changes.
func (s *TaskService) Create(ctx context.Context, p domain.Principal, input ports.CreateTaskInput) (*domain.Task, error) {
	owner, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	if input.DueDate != nil && input.DueDate.Before(today()) {
		return nil, domain.Validationf("dueDate: can't be in Past")
	}

	task := &domain.Task{
		Description: input.Description,
		CreatedOn:   today(),
		Completed:   false,
		Owner:       owner.Username,
		OwnerID:     owner.ID,
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Msg("new task created")
	s.audit.Record(domain.AuditEntry{
		Entity:   "task",
		EntityID: created.ID,
		Action:   domain.AuditCreated,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return created, nil
}

// ListOwn returns a page of the principal's tasks ordered by id.
func (s *TaskService) ListOwn(ctx context.Context, p domain.Principal, page, size int) ([]*domain.Task, error) {
	owner, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListByOwner(ctx, owner.ID, page, size)
}

// GetByID returns the task when the principal owns it or is an admin.
func (s *TaskService) GetByID(ctx context.Context, p domain.Principal, id int64) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckOwnership(p, task.Owner, id); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial update; only the owner may update.
func (s *TaskService) Update(ctx context.Context, p domain.Principal, id int64, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckOwnerOnly(p, task.Owner, id); err != nil {
		return nil, err
	}

	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Msg("task updated")
	s.audit.Record(domain.AuditEntry{
		Entity:   "task",
		EntityID: id,
		Action:   domain.AuditUpdated,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return task, nil
}

// MarkCompleted flips the completion flag. Completing an already completed
// task is a no-op success.
func (s *TaskService) MarkCompleted(ctx context.Context, p domain.Principal, id int64) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CheckOwnerOnly(p, task.Owner, id); err != nil {
		return err
	}

	task.Completed = true
	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("task marked as completed")
	s.audit.Record(domain.AuditEntry{
		Entity:   "task",
		EntityID: id,
		Action:   domain.AuditUpdated,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return nil
}

// Delete removes the task; only the owner may delete.
func (s *TaskService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CheckOwnerOnly(p, task.Owner, id); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("task deleted")
	s.audit.Record(domain.AuditEntry{
		Entity:   "task",
		EntityID: id,
		Action:   domain.AuditDeleted,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return nil
}
