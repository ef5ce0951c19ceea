package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

// UserService implements the authenticated user's own account operations.
type UserService struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, tasks ports.TaskRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	if audit == nil {
		audit = ports.NopAuditRecorder{}
	}
	return &UserService{users: users, tasks: tasks, audit: audit, logger: logger}
}

func (s *UserService) Get(ctx context.Context, p domain.Principal) (*domain.User, error) {
	return s.users.FindByUsername(ctx, p.Username)
}

// Update applies a partial profile update. A username change is validated
// for uniqueness and propagated to the denormalized task owner field.
func (s *UserService) Update(ctx context.Context, p domain.Principal, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}

	renamed := false
	if input.Username != nil && *input.Username != user.Username {
		if _, err := s.users.FindByUsername(ctx, *input.Username); err == nil {
			return nil, domain.Validationf("username - such username already exist; ")
		}
		user.Username = *input.Username
		renamed = true
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.DateOfBirth != nil {
		if input.DateOfBirth.After(today()) {
			return nil, domain.Validationf("dateOfBirth: can't be in Future")
		}
		user.DateOfBirth = *input.DateOfBirth
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if renamed {
		if err := s.tasks.RenameOwner(ctx, user.ID, user.Username); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int64("id", user.ID).Msg("user updated")
	s.audit.Record(domain.AuditEntry{
		Entity:   "user",
		EntityID: user.ID,
		Action:   domain.AuditUpdated,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return user, nil
}

// EditPassword verifies the old credentials and stores a new hash.
func (s *UserService) EditPassword(ctx context.Context, p domain.Principal, input ports.EditPasswordInput) error {
	user, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return err
	}
	if err := verifyCredentials(input.Username, input.OldPassword, user); err != nil {
		return err
	}

	hash, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int64("id", user.ID).Msg("user password edited")
	s.audit.Record(domain.AuditEntry{
		Entity:   "user",
		EntityID: user.ID,
		Action:   domain.AuditUpdated,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return nil
}

// DeleteAccount removes the principal's account and all owned tasks after
// credential re-verification.
func (s *UserService) DeleteAccount(ctx context.Context, p domain.Principal, username, password string) error {
	user, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return err
	}
	if err := verifyCredentials(username, password, user); err != nil {
		return err
	}

	if err := s.tasks.DeleteByOwner(ctx, user.ID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user deleted")
	s.audit.Record(domain.AuditEntry{
		Entity:   "user",
		EntityID: user.ID,
		Action:   domain.AuditDeleted,
		Actor:    p.Username,
		At:       time.Now().UTC(),
	})
	return nil
}
