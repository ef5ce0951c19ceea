package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the AuditService that persists queued audit
// entries.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit entry.
func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("persist audit entry: %w", err)
	}
	s.log.Debug().
		Str("entity", entry.Entity).
		Int64("entity_id", entry.EntityID).
		Str("action", entry.Action).
		Str("actor", entry.Actor).
		Msg("audit entry recorded")
	return nil
}
