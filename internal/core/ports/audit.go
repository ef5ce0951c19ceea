package ports

import (
	"context"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
}

// AuditRecorder accepts audit entries for asynchronous persistence.
// Services call it fire-and-forget; a failed audit write never fails the
// mutation it describes.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService processes queued audit entries.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
}

// NopAuditRecorder discards entries; used when auditing is disabled and
// in tests.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(domain.AuditEntry) {}
