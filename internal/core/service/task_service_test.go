package service

import (
	"context"
	"testing"
	"time"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

var (
	ivan  = domain.Principal{Username: "ivan", Roles: []string{domain.RoleUser}}
	katya = domain.Principal{Username: "katya", Roles: []string{domain.RoleUser}}
	admin = domain.Principal{Username: "boss", Roles: []string{domain.RoleAdmin}}
)

func ivansTask(id int64) *domain.Task {
	return &domain.Task{ID: id, Description: "buy milk", Owner: "ivan", OwnerID: 1}
}

func findIvansTask(id int64) func(ctx context.Context, id int64) (*domain.Task, error) {
	return func(ctx context.Context, got int64) (*domain.Task, error) {
		if got != id {
			return nil, domain.NotFoundf("There is no task with id=%d in database", got)
		}
		return ivansTask(id), nil
	}
}

func TestTaskService_Create(t *testing.T) {
	users := &stubUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "ivan", Role: domain.RoleUser}, nil
		},
	}
	tasks := &stubTaskRepo{
		createFn: func(ctx context.Context, task *domain.Task) (*domain.Task, error) {
			task.ID = 7
			return task, nil
		},
	}
	audit := &recordingAudit{}
	svc := NewTaskService(tasks, users, audit, testLogger())

	created, err := svc.Create(context.Background(), ivan, ports.CreateTaskInput{Description: "buy milk"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.Owner != "ivan" || created.OwnerID != 1 {
		t.Fatalf("owner not set from principal: %+v", created)
	}
	if created.Completed {
		t.Fatal("new task must start incomplete")
	}
	if created.CreatedOn.IsZero() {
		t.Fatal("creation date must be set")
	}
	if len(audit.entries) != 1 || audit.entries[0].Entity != "task" {
		t.Fatalf("unexpected audit trail: %+v", audit.entries)
	}
}

func TestTaskService_Create_PastDueDate(t *testing.T) {
	users := &stubUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "ivan"}, nil
		},
	}
	svc := NewTaskService(&stubTaskRepo{}, users, nil, testLogger())

	past := time.Now().UTC().AddDate(0, 0, -2)
	_, err := svc.Create(context.Background(), ivan, ports.CreateTaskInput{Description: "buy milk", DueDate: &past})
	if err == nil || err.Error() != "dueDate: can't be in Past" {
		t.Fatalf("expected past due date rejection, got %v", err)
	}
}

func TestTaskService_GetByID_Ownership(t *testing.T) {
	tasks := &stubTaskRepo{findByIDFn: findIvansTask(7)}
	svc := NewTaskService(tasks, &stubUserRepo{}, nil, testLogger())

	// Owner reads their own task.
	if _, err := svc.GetByID(context.Background(), ivan, 7); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	// Admin may read anyone's task.
	if _, err := svc.GetByID(context.Background(), admin, 7); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}

	// Another user is rejected with the ownership message.
	_, err := svc.GetByID(context.Background(), katya, 7)
	if err == nil || err.Error() != "Task with id=7 belongs to another user" {
		t.Fatalf("expected ownership rejection, got %v", err)
	}
}

func TestTaskService_GetByID_NotFound(t *testing.T) {
	tasks := &stubTaskRepo{findByIDFn: findIvansTask(7)}
	svc := NewTaskService(tasks, &stubUserRepo{}, nil, testLogger())

	_, err := svc.GetByID(context.Background(), ivan, 99)
	if err == nil || err.Error() != "There is no task with id=99 in database" {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTaskService_Update_OwnerOnly(t *testing.T) {
	tasks := &stubTaskRepo{
		findByIDFn: findIvansTask(7),
		updateFn:   func(ctx context.Context, task *domain.Task) error { return nil },
	}
	svc := NewTaskService(tasks, &stubUserRepo{}, nil, testLogger())

	desc := "buy bread"
	updated, err := svc.Update(context.Background(), ivan, 7, ports.UpdateTaskInput{Description: &desc})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Description != "buy bread" {
		t.Fatalf("description not applied: %q", updated.Description)
	}

	// Admins do not bypass the owner-only rule for mutations.
	_, err = svc.Update(context.Background(), admin, 7, ports.UpdateTaskInput{Description: &desc})
	if err == nil || err.Error() != "Task with id=7 belongs to another user" {
		t.Fatalf("expected ownership rejection for admin, got %v", err)
	}
}

func TestTaskService_MarkCompleted_Idempotent(t *testing.T) {
	completed := ivansTask(7)
	completed.Completed = true

	updates := 0
	tasks := &stubTaskRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) { return completed, nil },
		updateFn: func(ctx context.Context, task *domain.Task) error {
			updates++
			if !task.Completed {
				t.Fatal("completion flag must stay set")
			}
			return nil
		},
	}
	svc := NewTaskService(tasks, &stubUserRepo{}, nil, testLogger())

	// Completing an already completed task succeeds again.
	if err := svc.MarkCompleted(context.Background(), ivan, 7); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if err := svc.MarkCompleted(context.Background(), ivan, 7); err != nil {
		t.Fatalf("repeat completion failed: %v", err)
	}
	if updates != 2 {
		t.Fatalf("expected 2 updates, got %d", updates)
	}
}

func TestTaskService_Delete_OwnerOnly(t *testing.T) {
	deleted := false
	tasks := &stubTaskRepo{
		findByIDFn: findIvansTask(7),
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewTaskService(tasks, &stubUserRepo{}, nil, testLogger())

	if err := svc.Delete(context.Background(), katya, 7); err == nil {
		t.Fatal("expected ownership rejection")
	}
	if deleted {
		t.Fatal("delete must not run for non-owner")
	}

	if err := svc.Delete(context.Background(), ivan, 7); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("delete did not reach the repository")
	}
}

func TestTaskService_ListOwn(t *testing.T) {
	users := &stubUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "ivan"}, nil
		},
	}
	tasks := &stubTaskRepo{
		listByOwnerFn: func(ctx context.Context, ownerID int64, page, size int) ([]*domain.Task, error) {
			if ownerID != 1 {
				t.Fatalf("unexpected owner id: %d", ownerID)
			}
			if page != 0 || size != 20 {
				t.Fatalf("unexpected paging: page=%d size=%d", page, size)
			}
			return []*domain.Task{ivansTask(7)}, nil
		},
	}
	svc := NewTaskService(tasks, users, nil, testLogger())

	list, err := svc.ListOwn(context.Background(), ivan, 0, 20)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 1 || list[0].ID != 7 {
		t.Fatalf("unexpected list: %+v", list)
	}
}
