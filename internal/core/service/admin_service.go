package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

// AdminService implements the administrator operations. The ADMIN role
// gate runs at the route group; this layer enforces admin immunity and
// credential re-verification for destructive calls.
type AdminService struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, tasks ports.TaskRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AdminService {
	if audit == nil {
		audit = ports.NopAuditRecorder{}
	}
	return &AdminService{users: users, tasks: tasks, audit: audit, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context, page, size int) ([]*domain.User, error) {
	return s.users.List(ctx, page, size)
}

func (s *AdminService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// LockUser locks the target account. Administrators are immune. Tokens
// issued before the lock remain valid until they expire.
func (s *AdminService) LockUser(ctx context.Context, p domain.Principal, id int64) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CheckAdminImmunity(user, "lock"); err != nil {
		return err
	}

	user.Locked = true
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Str("username", user.Username).Msg("user locked")
	s.audit.Record(domain.AuditEntry{
		Entity:   "user",
		EntityID: id,
		Action:   domain.AuditLocked,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return nil
}

func (s *AdminService) UnlockUser(ctx context.Context, p domain.Principal, id int64) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Locked = false
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Str("username", user.Username).Msg("user unlocked")
	s.audit.Record(domain.AuditEntry{
		Entity:   "user",
		EntityID: id,
		Action:   domain.AuditUnlocked,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return nil
}

// DeleteUser removes the target account and its tasks. The acting admin's
// own credentials are re-verified first; administrators cannot be deleted.
func (s *AdminService) DeleteUser(ctx context.Context, p domain.Principal, id int64, username, password string) error {
	admin, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return err
	}
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := verifyCredentials(username, password, admin); err != nil {
		return err
	}
	if err := domain.CheckAdminImmunity(target, "delete"); err != nil {
		return err
	}

	if err := s.tasks.DeleteByOwner(ctx, target.ID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, target.ID); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Str("username", target.Username).Msg("user deleted by admin")
	s.audit.Record(domain.AuditEntry{
		Entity:   "user",
		EntityID: id,
		Action:   domain.AuditDeleted,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return nil
}

func (s *AdminService) ListTasks(ctx context.Context, page, size int) ([]*domain.Task, error) {
	return s.tasks.List(ctx, page, size)
}

func (s *AdminService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}
