package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// Function-field stubs shared by the service tests. Unset fields panic,
// which is exactly the signal we want when a test takes an unexpected path.

type stubUserRepo struct {
	createFn         func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	findByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	listFn           func(ctx context.Context, page, size int) ([]*domain.User, error)
	updateFn         func(ctx context.Context, user *domain.User) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findByUsernameFn(ctx, username)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) List(ctx context.Context, page, size int) ([]*domain.User, error) {
	return s.listFn(ctx, page, size)
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubTaskRepo struct {
	createFn        func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	findByIDFn      func(ctx context.Context, id int64) (*domain.Task, error)
	listByOwnerFn   func(ctx context.Context, ownerID int64, page, size int) ([]*domain.Task, error)
	listFn          func(ctx context.Context, page, size int) ([]*domain.Task, error)
	updateFn        func(ctx context.Context, task *domain.Task) error
	deleteFn        func(ctx context.Context, id int64) error
	deleteByOwnerFn func(ctx context.Context, ownerID int64) error
	renameOwnerFn   func(ctx context.Context, ownerID int64, newUsername string) error
}

func (s *stubTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return s.createFn(ctx, task)
}

func (s *stubTaskRepo) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubTaskRepo) ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]*domain.Task, error) {
	return s.listByOwnerFn(ctx, ownerID, page, size)
}

func (s *stubTaskRepo) List(ctx context.Context, page, size int) ([]*domain.Task, error) {
	return s.listFn(ctx, page, size)
}

func (s *stubTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	return s.updateFn(ctx, task)
}

func (s *stubTaskRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTaskRepo) DeleteByOwner(ctx context.Context, ownerID int64) error {
	return s.deleteByOwnerFn(ctx, ownerID)
}

func (s *stubTaskRepo) RenameOwner(ctx context.Context, ownerID int64, newUsername string) error {
	return s.renameOwnerFn(ctx, ownerID, newUsername)
}

// stubThrottle counts failures in memory.
type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (s *stubThrottle) Blocked(context.Context, string) (bool, error) { return s.blocked, nil }
func (s *stubThrottle) RecordFailure(context.Context, string) error   { s.failures++; return nil }
func (s *stubThrottle) Reset(context.Context, string) error           { s.resets++; return nil }

// recordingAudit captures entries for assertions.
type recordingAudit struct {
	entries []domain.AuditEntry
}

func (r *recordingAudit) Record(e domain.AuditEntry) { r.entries = append(r.entries, e) }

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func mustHash(password string) string {
	hash, err := hashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}
