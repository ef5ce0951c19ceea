package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
	"github.com/lepdv/todolist-rest/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	codec    *token.Codec
	throttle ports.LoginThrottle
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, throttle ports.LoginThrottle, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	if throttle == nil {
		throttle = ports.NopLoginThrottle{}
	}
	if audit == nil {
		audit = ports.NopAuditRecorder{}
	}
	return &AuthService{users: users, codec: codec, throttle: throttle, audit: audit, logger: logger}
}

// Login authenticates the credentials and returns a signed token.
// Check order mirrors the account checks of the previous stack: existence,
// lock status, then password.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	blocked, err := s.throttle.Blocked(ctx, username)
	if err != nil {
		// Throttle backend trouble must not take logins down with it.
		s.logger.Warn().Err(err).Msg("login throttle unavailable, failing open")
	} else if blocked {
		return "", domain.Policyf("Too many failed login attempts")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.KindNotFound {
			s.noteFailure(ctx, username)
			return "", domain.Policyf("Incorrect credentials")
		}
		return "", err
	}

	if err := domain.RequireUnlocked(user); err != nil {
		return "", err
	}

	if err := verifyCredentials(username, password, user); err != nil {
		s.noteFailure(ctx, username)
		return "", err
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle reset failed")
	}

	jwt, err := s.codec.Issue(user.Username, user.Roles())
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return jwt, nil
}

// Register creates a new USER account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return "", domain.Validationf("username - such username already exist; ")
	}
	if input.DateOfBirth != nil && input.DateOfBirth.After(today()) {
		return "", domain.Validationf("dateOfBirth: can't be in Future")
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         domain.RoleUser,
		Locked:       false,
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("id", created.ID).Str("username", created.Username).Msg("new user registered")
	s.audit.Record(domain.AuditEntry{
		Entity:   "user",
		EntityID: created.ID,
		Action:   domain.AuditCreated,
		Actor:    created.Username,
		At:       time.Now().UTC(),
	})

	return s.codec.Issue(created.Username, created.Roles())
}

func (s *AuthService) noteFailure(ctx context.Context, username string) {
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}

// today returns the current date with the time part zeroed, UTC.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
